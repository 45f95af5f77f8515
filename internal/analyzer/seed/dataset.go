// Package seed carries the fixed company universe the analyzer loads on
// startup: reference data, four fiscal years of reported figures per
// company, and the base price each simulated path starts from.
package seed

// CompanySeed is one company's reference data.
type CompanySeed struct {
	Ticker   string
	Name     string
	Sector   string
	Industry string
}

// StatementSeed is one fiscal year of reported figures, USD millions.
type StatementSeed struct {
	Year             int
	Revenue          float64
	GrossProfit      float64
	NetIncome        float64
	TotalAssets      float64
	TotalLiabilities float64
	Equity           float64
}

// Companies lists the analyzed universe.
var Companies = []CompanySeed{
	{Ticker: "AAPL", Name: "Apple Inc.", Sector: "Technology", Industry: "Consumer Electronics"},
	{Ticker: "MSFT", Name: "Microsoft Corp.", Sector: "Technology", Industry: "Software"},
	{Ticker: "TSLA", Name: "Tesla Inc.", Sector: "Automotive", Industry: "Electric Vehicles"},
	{Ticker: "AMZN", Name: "Amazon.com Inc.", Sector: "Consumer", Industry: "E-Commerce"},
	{Ticker: "GOOGL", Name: "Alphabet Inc.", Sector: "Technology", Industry: "Internet Services"},
}

// Financials maps ticker to its reported annual statements.
var Financials = map[string][]StatementSeed{
	"AAPL": {
		{2020, 274515, 104956, 57411, 323888, 258549, 65339},
		{2021, 365817, 152836, 94680, 351002, 287912, 63090},
		{2022, 394328, 170782, 99803, 352755, 302083, 50672},
		{2023, 383285, 169148, 96995, 352583, 290437, 62146},
	},
	"MSFT": {
		{2020, 143015, 96937, 44281, 301311, 183007, 118304},
		{2021, 168088, 115856, 61271, 333779, 191791, 141988},
		{2022, 198270, 135620, 72738, 364840, 198298, 166542},
		{2023, 211915, 146052, 72361, 411976, 205753, 206223},
	},
	"TSLA": {
		{2020, 31536, 6630, 721, 52148, 28170, 22225},
		{2021, 53823, 13606, 5519, 62131, 30548, 30189},
		{2022, 81462, 20853, 12556, 82338, 36440, 44704},
		{2023, 96773, 17660, 14974, 106618, 43009, 62634},
	},
	"AMZN": {
		{2020, 386064, 152757, 21331, 321195, 227791, 93404},
		{2021, 469822, 197478, 33364, 420549, 282304, 138245},
		{2022, 513983, 187506, -2722, 462675, 316932, 146043},
		{2023, 574785, 230849, 30425, 527854, 338206, 189648},
	},
	"GOOGL": {
		{2020, 182527, 97795, 40269, 319616, 97072, 222544},
		{2021, 257637, 146698, 76033, 359268, 107633, 251635},
		{2022, 282836, 156633, 59972, 359268, 109120, 256144},
		{2023, 307394, 174062, 73795, 402392, 109120, 283379},
	},
}

// BasePrices maps ticker to the initial simulated price.
var BasePrices = map[string]float64{
	"AAPL":  130,
	"MSFT":  230,
	"TSLA":  220,
	"AMZN":  165,
	"GOOGL": 140,
}
