// Package scenario describes demonstrations as YAML documents: each step
// names an operation and its integer inputs, and is evaluated by encoding the
// inputs as church terms and decoding the result.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyScenario    = errors.New("Scenario has no steps")
	ErrUnknownOp        = errors.New("Unknown operation")
	ErrArity            = errors.New("Wrong number of arguments")
	ErrNegativeArgument = errors.New("Arguments must be non-negative")
)

type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

type Step struct {
	Op   string `yaml:"op"`
	Args []int  `yaml:"args,omitempty"`
	List []int  `yaml:"list,omitempty"`
	// Expect is compared against the rendered result when set.
	Expect string `yaml:"expect,omitempty"`
}

// Default reproduces the classic demonstration: 1 + 2 and 5!.
func Default() *Scenario {
	return &Scenario{
		Name: "default",
		Steps: []Step{
			{Op: "add", Args: []int{1, 2}, Expect: "3"},
			{Op: "factorial", Args: []int{5}, Expect: "120"},
		},
	}
}

func Load(path string) (*Scenario, error) {
	var file, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var scenario *Scenario
	scenario, err = Parse(file)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return scenario, nil
}

func Parse(r io.Reader) (*Scenario, error) {
	var data, err = io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	var decoder = yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScenario
		}
		return nil, fmt.Errorf("parse: %w", err)
	}

	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	scenario.fillNullLists(&document)

	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// fillNullLists turns a step's `list:` with a null value into an empty list.
// The decoder leaves such a list nil, the same as when the key is absent.
func (scenario *Scenario) fillNullLists(document *yaml.Node) {
	var steps = mappingValue(document, "steps")
	if steps == nil || steps.Kind != yaml.SequenceNode {
		return
	}
	for i, stepNode := range steps.Content {
		if i >= len(scenario.Steps) {
			break
		}
		if mappingValue(stepNode, "list") != nil && scenario.Steps[i].List == nil {
			scenario.Steps[i].List = []int{}
		}
	}
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func (scenario *Scenario) Validate() error {
	if len(scenario.Steps) == 0 {
		return ErrEmptyScenario
	}
	for i, step := range scenario.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
	}
	return nil
}

func (step Step) validate() error {
	var op, ok = operations[step.Op]
	if !ok {
		return ErrUnknownOp
	}
	if len(step.Args) != op.arity {
		return fmt.Errorf("%w: expected %d, got %d", ErrArity, op.arity, len(step.Args))
	}
	if op.takesList != (step.List != nil) {
		if op.takesList {
			return fmt.Errorf("%w: missing list", ErrArity)
		}
		return fmt.Errorf("%w: unexpected list", ErrArity)
	}
	for _, value := range append(append([]int{}, step.Args...), step.List...) {
		if value < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeArgument, value)
		}
	}
	return nil
}
