package types

import "github.com/benjaminmd/ezplot/stack"

type CurvePayload struct {
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Calc []float64 `json:"calc"`
	Obs  []float64 `json:"obs"`
}

type LayoutPayload struct {
	Curves []CurvePayload `json:"curves"`
}

type PlacementPayload struct {
	Name     string  `json:"name"`
	Baseline float64 `json:"baseline"`
	Shift    float64 `json:"shift"`
}

type LayoutResponse struct {
	Placements []PlacementPayload `json:"placements"`
}

type RenderPayload struct {
	// single, dual or stack
	Kind   string         `json:"kind"`
	Format string         `json:"format"`
	Curves []CurvePayload `json:"curves"`
	// optional, stack only
	ColorMap string    `json:"colorMap"`
	Values   []float64 `json:"values"`
}

type RenderResponse struct {
	Id  string `json:"id"`
	URL string `json:"url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (c CurvePayload) Curve() stack.Curve {
	return stack.Curve{Name: c.Name, X: c.X, Calc: c.Calc, Obs: c.Obs}
}

func Curves(payloads []CurvePayload) []stack.Curve {
	curves := make([]stack.Curve, len(payloads))
	for i, p := range payloads {
		curves[i] = p.Curve()
	}
	return curves
}

func NewLayoutResponse(placements []stack.Placement) LayoutResponse {
	r := LayoutResponse{Placements: make([]PlacementPayload, len(placements))}
	for i, p := range placements {
		r.Placements[i] = PlacementPayload{p.Name, p.Baseline, p.Shift}
	}
	return r
}
