package subtitle

// single spoken word with its loose "m:ss.fff" start and end times
type WordTiming struct {
	Word      string `json:"word"`
	TimeStart string `json:"timeStart"`
	TimeEnd   string `json:"timeEnd"`
}
