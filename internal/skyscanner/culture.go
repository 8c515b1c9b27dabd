package skyscanner

type Markets struct {
	Markets []Market `json:"markets"`
}

type Market struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

type Locales struct {
	Locales []Locale `json:"locales"`
}

type Locale struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
