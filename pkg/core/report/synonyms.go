package report

// MetricSynonyms pairs a canonical metric with the row-label variants that
// appear for it in source documents. Order matters twice: the matcher breaks
// score ties by first metric encountered, and synonym order reflects how
// common each variant is.
type MetricSynonyms struct {
	Metric   string
	Variants []string
}

// dipdSynonyms covers Dipped Products' statement vocabulary. DIPD labels its
// top line "turnover" in older reports.
var dipdSynonyms = []MetricSynonyms{
	{MetricRevenue, []string{"turnover", "revenue", "revenue from contracts with customers", "total income"}},
	{MetricCOGS, []string{"cost of sales", "cost of goods sold", "cost of revenue", "direct expenses"}},
	{MetricGrossProfit, []string{"gross profit", "gross profit/(loss)", "gross income"}},
	{MetricDistributionCosts, []string{"distribution costs", "distribution expenses", "selling expenses"}},
	{MetricAdministrativeExp, []string{"administrative expenses", "admin expenses", "administration costs"}},
	{MetricOtherExpenses, []string{"other expenses", "other operating expense", "other costs", "miscellaneous expense", "other losses", "other outflows"}},
	{MetricOtherIncome, []string{"other income", "other income and gains", "other operating income", "miscellaneous income", "other gains", "other inflows"}},
	{MetricOperatingExpenses, []string{"operating expenses", "cash outflows from operating activities", "operating expenditure", "operating outflows", "total operating expenses"}},
	{MetricOperatingIncome, []string{"operating income", "operating profit", "profit from operations", "profit/(loss) from operations", "results from operating activities", "cash inflows from operating activities", "operating inflows", "total operating income"}},
	{MetricNetIncome, []string{"net income", "net profit", "profit for the period", "profit/(loss) for the period", "total comprehensive income"}},
}

// rexpSynonyms differs from DIPD in the other-expense bucket name and a
// spacing variant of the net income label.
var rexpSynonyms = []MetricSynonyms{
	{MetricRevenue, []string{"revenue", "revenue from contracts with customers", "total income"}},
	{MetricCOGS, []string{"cost of sales", "cost of goods sold", "cost of revenue", "direct expenses"}},
	{MetricGrossProfit, []string{"gross profit", "gross profit/(loss)", "gross income"}},
	{MetricDistributionCosts, []string{"distribution costs", "distribution expenses", "selling expenses"}},
	{MetricAdministrativeExp, []string{"administrative expenses", "admin expenses", "administration costs"}},
	{MetricOtherOperatingExpense, []string{"other operating expense", "other expenses", "other costs", "miscellaneous expense", "other losses", "other outflows"}},
	{MetricOtherIncome, []string{"other income", "other income and gains", "other operating income", "miscellaneous income", "other gains", "other inflows"}},
	{MetricOperatingExpenses, []string{"operating expenses", "cash outflows from operating activities", "operating expenditure", "operating outflows", "total operating expenses"}},
	{MetricOperatingIncome, []string{"operating income", "operating profit", "profit from operations", "profit/(loss) from operations", "results from operating activities", "cash inflows from operating activities", "operating inflows", "total operating income"}},
	{MetricNetIncome, []string{"net income", "net profit", "profit / (loss) for the period", "profit for the period", "total comprehensive income"}},
}

// Synonyms returns the ordered synonym table for a company.
func Synonyms(c Company) []MetricSynonyms {
	switch c {
	case CompanyREXP:
		return rexpSynonyms
	default:
		return dipdSynonyms
	}
}

// OtherExpenseBucket names the company's catch-all operating expense metric.
// DIPD reports a single "Other Expenses" line; REXP splits it out as
// "Other Operating Expense".
func OtherExpenseBucket(c Company) string {
	if c == CompanyREXP {
		return MetricOtherOperatingExpense
	}
	return MetricOtherExpenses
}

// OperatingCostComponents lists the metrics summed into Operating Expenses.
func OperatingCostComponents(c Company) []string {
	return []string{MetricDistributionCosts, MetricAdministrativeExp, OtherExpenseBucket(c)}
}

// CostMetrics lists every metric stored as an absolute (positive) magnitude.
var CostMetrics = []string{
	MetricCOGS, MetricDistributionCosts, MetricAdministrativeExp,
	MetricOtherExpenses, MetricOtherOperatingExpense,
}
