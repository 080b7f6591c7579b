package grammar

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Korede-TA/ise/coord"
)

// ErrKindTag indicates a kind or control object whose tag is missing or unknown.
var ErrKindTag = errors.New("grammar: unknown kind tag")

// styleJSON fixes the on-disk field names of Style.
type styleJSON struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	BorderColor    string  `json:"border_color"`
	BorderCollapse bool    `json:"border_collapse"`
	FontWeight     int     `json:"font_weight"`
	FontColor      string  `json:"font_color"`
}

// MarshalJSON serializes every style field under its snake_case name.
func (s Style) MarshalJSON() ([]byte, error) {
	return json.Marshal(styleJSON(s))
}

// UnmarshalJSON restores a style from its snake_case object form.
func (s *Style) UnmarshalJSON(data []byte) error {
	var raw styleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Style(raw)
	return nil
}

// grammarJSON is the wire shape of a grammar: {name, style, kind}.
type grammarJSON struct {
	Name  string          `json:"name"`
	Style Style           `json:"style"`
	Kind  json.RawMessage `json:"kind"`
}

// MarshalJSON serializes the grammar with its kind as a tagged object.
func (g Grammar) MarshalJSON() ([]byte, error) {
	kind, err := marshalKind(g.Kind)
	if err != nil {
		return nil, err
	}
	return json.Marshal(grammarJSON{Name: g.Name, Style: g.Style, Kind: kind})
}

// UnmarshalJSON restores a grammar, dispatching on the kind tag.
func (g *Grammar) UnmarshalJSON(data []byte) error {
	var raw grammarJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, err := unmarshalKind(raw.Kind)
	if err != nil {
		return err
	}
	*g = Grammar{Name: raw.Name, Style: raw.Style, Kind: kind}
	return nil
}

// interactiveJSON is the payload under the "Interactive" tag.
type interactiveJSON struct {
	Name    string          `json:"name"`
	Control json.RawMessage `json:"interactive"`
}

func marshalKind(k Kind) (json.RawMessage, error) {
	switch v := k.(type) {
	case Text:
		return json.Marshal(map[string]string{"Text": v.Value})
	case Input:
		return json.Marshal(map[string]string{"Input": v.Value})
	case Interactive:
		ctrl, err := marshalControl(v.Control)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]interactiveJSON{
			"Interactive": {Name: v.Name, Control: ctrl},
		})
	case Grid:
		pairs := make([][2]uint32, len(v.SubCoords))
		for i, f := range v.SubCoords {
			pairs[i] = [2]uint32{f.Row, f.Col}
		}
		return json.Marshal(map[string][][2]uint32{"Grid": pairs})
	default:
		return nil, fmt.Errorf("%w: %T", ErrKindTag, k)
	}
}

func unmarshalKind(data json.RawMessage) (Kind, error) {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return nil, err
	}
	if len(tagged) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one tag", ErrKindTag)
	}
	for tag, payload := range tagged {
		switch tag {
		case "Text":
			var s string
			if err := json.Unmarshal(payload, &s); err != nil {
				return nil, err
			}
			return Text{Value: s}, nil
		case "Input":
			var s string
			if err := json.Unmarshal(payload, &s); err != nil {
				return nil, err
			}
			return Input{Value: s}, nil
		case "Interactive":
			var raw interactiveJSON
			if err := json.Unmarshal(payload, &raw); err != nil {
				return nil, err
			}
			ctrl, err := unmarshalControl(raw.Control)
			if err != nil {
				return nil, err
			}
			return Interactive{Name: raw.Name, Control: ctrl}, nil
		case "Grid":
			var pairs [][2]uint32
			if err := json.Unmarshal(payload, &pairs); err != nil {
				return nil, err
			}
			subs := make([]coord.Fragment, len(pairs))
			for i, p := range pairs {
				f, err := coord.NewFragment(p[0], p[1])
				if err != nil {
					return nil, err
				}
				subs[i] = f
			}
			return Grid{SubCoords: subs}, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrKindTag, tag)
		}
	}
	return nil, fmt.Errorf("%w: empty object", ErrKindTag)
}

func marshalControl(c Control) (json.RawMessage, error) {
	switch v := c.(type) {
	case Button:
		return json.Marshal(map[string][]float64{"Button": {}})
	case Slider:
		return json.Marshal(map[string][3]float64{"Slider": {v.Value, v.Min, v.Max}})
	case Toggle:
		return json.Marshal(map[string]bool{"Toggle": v.On})
	default:
		return nil, fmt.Errorf("%w: %T", ErrKindTag, c)
	}
}

func unmarshalControl(data json.RawMessage) (Control, error) {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return nil, err
	}
	if len(tagged) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one control tag", ErrKindTag)
	}
	for tag, payload := range tagged {
		switch tag {
		case "Button":
			return Button{}, nil
		case "Slider":
			var vals [3]float64
			if err := json.Unmarshal(payload, &vals); err != nil {
				return nil, err
			}
			return NewSlider(vals[0], vals[1], vals[2])
		case "Toggle":
			var on bool
			if err := json.Unmarshal(payload, &on); err != nil {
				return nil, err
			}
			return Toggle{On: on}, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrKindTag, tag)
		}
	}
	return nil, fmt.Errorf("%w: empty control object", ErrKindTag)
}
