package news

import "time"

type sampleArticle struct {
	Headline string
	Content  string
	Source   string
	URL      string
	Age      time.Duration // how far in the past the article was published
}

// Built-in articles for POST /api/demo/populate.
var sampleNews = []sampleArticle{
	{
		Headline: "Apple Reports Record Q4 Earnings, iPhone Sales Surge 15%",
		Content:  "Apple Inc. announced today that its fourth-quarter earnings exceeded expectations, driven by strong iPhone 15 sales and robust services revenue. The company reported revenue of $89.5 billion, up 8% year-over-year. CEO Tim Cook highlighted the success of the new iPhone lineup and growing adoption of Apple services across all product categories.",
		Source:   "Financial Times",
		URL:      "https://example.com/apple-earnings",
		Age:      2 * time.Hour,
	},
	{
		Headline: "Tesla Stock Drops 12% After Production Delays Announcement",
		Content:  "Tesla shares plummeted in after-hours trading following the company's announcement of production delays at its new Berlin facility. The electric vehicle maker cited supply chain disruptions and regulatory approvals as primary factors. Analysts are revising their delivery estimates for Q4, with some cutting targets by as much as 20%.",
		Source:   "Reuters",
		URL:      "https://example.com/tesla-delays",
		Age:      4 * time.Hour,
	},
	{
		Headline: "Microsoft Azure Revenue Grows 30% as AI Demand Soars",
		Content:  "Microsoft Corporation reported exceptional growth in its cloud computing division, with Azure revenue increasing 30% quarter-over-quarter. The surge is primarily attributed to increased demand for AI and machine learning services. The company's partnership with OpenAI continues to drive enterprise adoption of AI solutions.",
		Source:   "Bloomberg",
		URL:      "https://example.com/microsoft-azure",
		Age:      6 * time.Hour,
	},
	{
		Headline: "Fed Signals Potential Rate Cut as Inflation Cools",
		Content:  "Federal Reserve officials hinted at a possible interest rate reduction in the coming months as inflation continues to moderate. The latest CPI data showed a 3.2% year-over-year increase, down from 3.7% last month. Markets rallied on the news, with technology stocks leading the gains.",
		Source:   "Wall Street Journal",
		URL:      "https://example.com/fed-rates",
		Age:      8 * time.Hour,
	},
}
