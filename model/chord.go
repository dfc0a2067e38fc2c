package model

type Keys = []uint8

// Sonority is the set of keys sounding together from Time on.
type Sonority struct {
	Time float64
	Keys Keys
	// NOTE: true when the sonority began with a note onset rather than a release
	FormedByNoteOn bool
}

type SetClass struct {
	Set    []int  `json:"set"`
	Normal []int  `json:"normal"`
	Prime  []int  `json:"prime"`
	Vector [6]int `json:"vector"`
	Key    string `json:"key"`
}

type SonorityAnalysis struct {
	Sonority
	SetClass
}
