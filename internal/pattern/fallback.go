package pattern

// Fallback maps a lowercase keyword to a canned pattern.
type Fallback struct {
	Keyword string `json:"keyword"`
	Pattern string `json:"pattern"`
}

// fallbackTable is scanned in order, so more specific keywords that contain
// shorter ones ("password" contains "word") must come first.
var fallbackTable = [...]Fallback{
	{Keyword: "email", Pattern: `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`},
	{Keyword: "phone", Pattern: `^\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}$`},
	{Keyword: "url", Pattern: `https?://(?:[-\w.])+(?:[:\d]+)?(?:/(?:[\w/_.])*(?:\?(?:[\w&=%.]*))?(?:#(?:\w*))?)?`},
	{Keyword: "ip", Pattern: `^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`},
	{Keyword: "date", Pattern: `^\d{1,2}/\d{1,2}/\d{4}$`},
	{Keyword: "time", Pattern: `^([01]?[0-9]|2[0-3]):[0-5][0-9]$`},
	{Keyword: "password", Pattern: `^[A-Za-z\d@$!%*?&]{8,}$`},
	{Keyword: "uuid", Pattern: `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`},
	{Keyword: "number", Pattern: `^\d+$`},
	{Keyword: "word", Pattern: `^[a-zA-Z]+$`},
	{Keyword: "alphanumeric", Pattern: `^[a-zA-Z0-9]+$`},
}

// Fallbacks returns a copy of the keyword table in lookup order.
func Fallbacks() []Fallback {
	out := make([]Fallback, len(fallbackTable))
	copy(out, fallbackTable[:])
	return out
}
