package kundli

// BirthData is the request body most single-horoscope endpoints accept.
// Any other JSON-serializable value may be passed instead.
type BirthData struct {
	Day   int     `json:"day"`
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Hour  int     `json:"hour"`
	Min   int     `json:"min"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Tzone float64 `json:"tzone"`
}

// MatchData is the request body for the matchmaking endpoints.
type MatchData struct {
	MaleDay     int     `json:"m_day"`
	MaleMonth   int     `json:"m_month"`
	MaleYear    int     `json:"m_year"`
	MaleHour    int     `json:"m_hour"`
	MaleMin     int     `json:"m_min"`
	MaleLat     float64 `json:"m_lat"`
	MaleLon     float64 `json:"m_lon"`
	MaleTzone   float64 `json:"m_tzone"`
	FemaleDay   int     `json:"f_day"`
	FemaleMonth int     `json:"f_month"`
	FemaleYear  int     `json:"f_year"`
	FemaleHour  int     `json:"f_hour"`
	FemaleMin   int     `json:"f_min"`
	FemaleLat   float64 `json:"f_lat"`
	FemaleLon   float64 `json:"f_lon"`
	FemaleTzone float64 `json:"f_tzone"`
}

// NumerologyData is the request body for the numerology endpoints.
type NumerologyData struct {
	Day   int    `json:"day"`
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Name  string `json:"name"`
}
