// Package companies is a small HTTP client for the European companies API.
//
// The client covers every public endpoint: domain lookup, filtered search,
// fuzzy name search, database statistics and the health probe.
//
//	client, err := companies.New("http://localhost:8000",
//		companies.WithToken(os.Getenv("API_TOKEN")),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	company, err := client.CompanyByDomain(ctx, "https://www.siemens.com/about")
//	if errors.Is(err, companies.ErrNotFound) {
//		// no company behind that domain
//	}
package companies
