package model

// MaxPageSize is the largest page openFDA serves per request
const MaxPageSize = 1000

// Response is one page of the openFDA device/510k endpoint
type Response struct {
	Meta    *ResponseMeta `json:"meta"`
	Results []Result      `json:"results"`
}

// ResponseMeta holds the response metadata
type ResponseMeta struct {
	Results *ResultsMeta `json:"results"`
}

// ResultsMeta describes the page window and the total match count
type ResultsMeta struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Total returns the reported total, or 0 when the metadata is missing
func (r *Response) Total() int {
	if r == nil || r.Meta == nil || r.Meta.Results == nil {
		return 0
	}
	return r.Meta.Results.Total
}

// Result is a single 510(k) clearance record
type Result struct {
	KNumber             string `json:"k_number"`
	Applicant           string `json:"applicant"`
	DeviceName          string `json:"device_name"`
	DateReceived        string `json:"date_received"`
	DecisionDate        string `json:"decision_date"`
	DecisionDescription string `json:"decision_description"`
}
