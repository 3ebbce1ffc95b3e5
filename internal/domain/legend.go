package domain

// RiskLegend is one presentation band of the fixed five-band risk scale.
// The colors, ranges and Thai labels are a published contract shared with
// the map frontend; do not localize or renumber them.
type RiskLegend struct {
	Color string `json:"color"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Level int    `json:"level"`
	Label string `json:"label"`
}

// RiskScoreLegends returns the fixed legend, lowest severity first.
func RiskScoreLegends() []RiskLegend {
	return []RiskLegend{
		{Color: "#64dd17", Min: 0, Max: 30, Level: 0, Label: "แจ้งข่าว"},
		{Color: "#0065a3", Min: 31, Max: 50, Level: 1, Label: "เผ้าระวัง"},
		{Color: "#ffeb3b", Min: 51, Max: 80, Level: 2, Label: "แจ้งเตือน"},
		{Color: "#ff9800", Min: 81, Max: 90, Level: 3, Label: "ให้อพยพ"},
		{Color: "#dd2c00", Min: 91, Max: 100, Level: 4, Label: "ต้องอพยพ"},
	}
}
