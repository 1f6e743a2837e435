package companies

import "github.com/sabithapaulraj/AlphaGraph/pkg/models"

// Tracked is the static reference list of companies the dashboard follows.
// Loaded once, never user-mutable.
var Tracked = []models.TrackedCompany{
	// US Fortune 500 Tech Giants
	{Symbol: "AAPL", Name: "Apple Inc."},
	{Symbol: "GOOGL", Name: "Alphabet Inc."},
	{Symbol: "MSFT", Name: "Microsoft Corporation"},
	{Symbol: "AMZN", Name: "Amazon.com Inc."},
	{Symbol: "TSLA", Name: "Tesla Inc."},
	{Symbol: "META", Name: "Meta Platforms Inc."},
	{Symbol: "NVDA", Name: "NVIDIA Corporation"},
	{Symbol: "NFLX", Name: "Netflix Inc."},
	{Symbol: "CRM", Name: "Salesforce Inc."},
	{Symbol: "ORCL", Name: "Oracle Corporation"},

	// Financial Services
	{Symbol: "JPM", Name: "JPMorgan Chase & Co."},
	{Symbol: "BAC", Name: "Bank of America Corp."},
	{Symbol: "WFC", Name: "Wells Fargo & Company"},
	{Symbol: "GS", Name: "Goldman Sachs Group Inc."},
	{Symbol: "MS", Name: "Morgan Stanley"},

	// Healthcare & Pharma
	{Symbol: "JNJ", Name: "Johnson & Johnson"},
	{Symbol: "PFE", Name: "Pfizer Inc."},
	{Symbol: "UNH", Name: "UnitedHealth Group Inc."},
	{Symbol: "CVS", Name: "CVS Health Corporation"},
	{Symbol: "ABBV", Name: "AbbVie Inc."},

	// Indian Companies (ADRs)
	{Symbol: "INFY", Name: "Infosys Limited"},
	{Symbol: "WIT", Name: "Wipro Limited"},
	{Symbol: "HDB", Name: "HDFC Bank Limited"},
	{Symbol: "IBN", Name: "ICICI Bank Limited"},
	{Symbol: "TTM", Name: "Tata Motors Limited"},
}
