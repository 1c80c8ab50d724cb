package dynprop

import (
	"fmt"
	"strconv"
	"time"

	"github.com/delaneyj/propcore/easing"
	"github.com/delaneyj/propcore/property"
	"gopkg.in/yaml.v3"
)

// Document is the YAML description of an Instance:
//
//	properties:
//	  width: 100
//	  title: hello
//	  tint: "#ff000080"
//	animations:
//	  width: {duration: 250ms, easing: ease-in-out}
//	links:
//	  - [width, height]
//	constants: [title]
//
// Strings that parse as #rgb, #rrggbb or #rrggbbaa become colors.
type Document struct {
	Properties yaml.Node                `yaml:"properties"`
	Animations map[string]AnimationSpec `yaml:"animations"`
	Links      [][]string               `yaml:"links"`
	Constants  []string                 `yaml:"constants"`
}

type AnimationSpec struct {
	Duration  string `yaml:"duration"`
	Delay     string `yaml:"delay"`
	LoopCount int32  `yaml:"loop_count"`
	Easing    string `yaml:"easing"`
	Direction string `yaml:"direction"`
}

func (s AnimationSpec) Animation() (property.Animation, error) {
	var (
		anim property.Animation
		err  error
	)
	if s.Duration != "" {
		if anim.Duration, err = time.ParseDuration(s.Duration); err != nil {
			return anim, err
		}
	}
	if s.Delay != "" {
		if anim.Delay, err = time.ParseDuration(s.Delay); err != nil {
			return anim, err
		}
	}
	if anim.Easing, err = easing.Parse(s.Easing); err != nil {
		return anim, err
	}
	if anim.Direction, err = property.ParseDirection(s.Direction); err != nil {
		return anim, err
	}
	anim.LoopCount = s.LoopCount
	return anim, nil
}

// Decode builds an Instance from a YAML Document.
func Decode(sys *property.System, data []byte) (*Instance, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding instance: %w", err)
	}
	return doc.Instance(sys)
}

// Instance builds the Instance described by doc. On error nothing is left
// behind in sys.
func (doc *Document) Instance(sys *property.System) (_ *Instance, err error) {
	in := NewInstance(sys)
	defer func() {
		if err != nil {
			in.Drop()
		}
	}()

	props := &doc.Properties
	if props.Kind != 0 && props.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: properties must be a mapping", props.Line)
	}
	for i := 0; i+1 < len(props.Content); i += 2 {
		key, node := props.Content[i], props.Content[i+1]
		v, err := scalarValue(node)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", node.Line, key.Value, err)
		}
		if err := in.Declare(key.Value, v); err != nil {
			return nil, fmt.Errorf("line %d: %w", key.Line, err)
		}
	}

	for name, spec := range doc.Animations {
		anim, err := spec.Animation()
		if err != nil {
			return nil, fmt.Errorf("animation of %s: %w", name, err)
		}
		if err := in.SetDefaultAnimation(name, &anim); err != nil {
			return nil, err
		}
	}

	for _, link := range doc.Links {
		if len(link) != 2 {
			return nil, fmt.Errorf("link %v must name two properties", link)
		}
		if err := in.Link(link[0], link[1]); err != nil {
			return nil, err
		}
	}

	for _, name := range doc.Constants {
		if err := in.SetConstant(name); err != nil {
			return nil, err
		}
	}
	return in, nil
}

func scalarValue(node *yaml.Node) (Value, error) {
	if node.Kind != yaml.ScalarNode {
		return Value{}, fmt.Errorf("expected a scalar")
	}
	switch node.Tag {
	case "!!null":
		return Value{}, nil
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			var i int64
			if err := node.Decode(&i); err != nil {
				return Value{}, err
			}
			f = float64(i)
		}
		return Number(f), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	default:
		if c, err := ParseColor(node.Value); err == nil {
			return ColorValue(c), nil
		}
		return String(node.Value), nil
	}
}
