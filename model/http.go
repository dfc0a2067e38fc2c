package model

type PcsetRequestBody struct {
	Pcs []int `json:"pcs"`
}

type MatrixRequestBody struct {
	Row   []int  `json:"row"`
	Label string `json:"label,omitempty"`
}

type MatrixResponse struct {
	Rows  [][]int `json:"rows,omitempty"`
	Label string  `json:"label,omitempty"`
	Row   []int   `json:"row,omitempty"`
	Text  string  `json:"text,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
