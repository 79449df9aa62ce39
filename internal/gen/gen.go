package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/griffnb/core-typedef/internal/console"
	"github.com/griffnb/core-typedef/internal/model"
	"github.com/griffnb/core-typedef/internal/orchestrator"
	"github.com/griffnb/core-typedef/internal/schema"
	"sigs.k8s.io/yaml"
)

// Version of core-typedef.
const Version = "v0.3.0"

// ModelSuffix is appended to the input's base name for every written dump.
const ModelSuffix = ".model"

type genTypeWriter func(*Config, *Dump) error

// Gen presents a generate tool for type models.
type Gen struct {
	json          func(data interface{}) ([]byte, error)
	jsonIndent    func(data interface{}) ([]byte, error)
	jsonToYAML    func(data []byte) ([]byte, error)
	outputTypeMap map[string]genTypeWriter
	debug         Debugger
}

// Debugger is the interface that wraps the basic Printf method.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// New creates a new Gen.
func New() *Gen {
	gen := Gen{
		json: json.Marshal,
		jsonIndent: func(data interface{}) ([]byte, error) {
			return json.MarshalIndent(data, "", "    ")
		},
		jsonToYAML: yaml.JSONToYAML,
		debug:      console.Logger,
	}

	gen.outputTypeMap = map[string]genTypeWriter{
		"json": gen.writeJSONModel,
		"yaml": gen.writeYAMLModel,
		"yml":  gen.writeYAMLModel,
	}

	return &gen
}

// Config presents Gen configurations.
type Config struct {
	Debugger Debugger

	// Inputs the documents to compile, comma separated if multiple
	Inputs string

	// RootPackage overrides the x-package of every input when set
	RootPackage string

	// OutputDir represents the output directory for all the generated files
	OutputDir string

	// OutputTypes define types of files which should be generated
	OutputTypes []string

	// PropNamingStrategy represents property naming strategy like snake case,camel case,pascal case
	PropNamingStrategy string

	// MaxDepth bounds inline schema nesting
	MaxDepth int
}

// Dump is the serialized model of one input document.
type Dump struct {
	Source  string          `json:"source"`
	Package string          `json:"package"`
	Session string          `json:"session"`
	Roots   []model.TypeRef `json:"roots"`
	// Declarations are keyed by category, each list in emission order.
	Declarations map[model.Category][]*model.Declaration `json:"declarations"`
}

// NewDump routes a compilation result's declarations by category.
func NewDump(result *orchestrator.Result) *Dump {
	d := &Dump{
		Source:       result.Path,
		Package:      result.Package,
		Session:      result.SessionID,
		Roots:        result.Roots,
		Declarations: make(map[model.Category][]*model.Declaration),
	}
	for _, e := range result.Declarations {
		d.Declarations[e.Category] = append(d.Declarations[e.Category], e.Declaration)
	}
	return d
}

// Build compiles every input and writes its model in each requested output type.
func (g *Gen) Build(config *Config) error {
	if config.Debugger != nil {
		g.debug = config.Debugger
	}

	inputs := splitInputs(config.Inputs)
	if len(inputs) == 0 {
		return fmt.Errorf("no input documents specified")
	}
	for _, input := range inputs {
		if _, err := os.Stat(input); os.IsNotExist(err) {
			return fmt.Errorf("file: %s does not exist", input)
		}
	}
	if config.PropNamingStrategy != "" && !schema.IsValidNamingStrategy(config.PropNamingStrategy) {
		return fmt.Errorf("not supported %s propertyStrategy", config.PropNamingStrategy)
	}
	if err := checkOutputNames(inputs); err != nil {
		return err
	}

	g.debug.Printf("Generate type models....")

	orc := orchestrator.New(&orchestrator.Config{
		RootPackage:        config.RootPackage,
		PropNamingStrategy: config.PropNamingStrategy,
		MaxDepth:           config.MaxDepth,
		Debug:              g.debug,
	})

	results, err := orc.CompileFiles(inputs)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(config.OutputDir, os.ModePerm); err != nil {
		return err
	}

	for _, result := range results {
		dump := NewDump(result)
		for _, outputType := range config.OutputTypes {
			outputType = strings.ToLower(strings.TrimSpace(outputType))
			if typeWriter, ok := g.outputTypeMap[outputType]; ok {
				if err := typeWriter(config, dump); err != nil {
					return err
				}
			} else {
				console.Logger.Warn("output type '%s' not supported", outputType)
			}
		}
	}

	return nil
}

func (g *Gen) writeJSONModel(config *Config, dump *Dump) error {
	jsonFileName := outputFile(config, dump.Source, "json")

	b, err := g.jsonIndent(dump)
	if err != nil {
		return err
	}

	err = g.writeFile(b, jsonFileName)
	if err != nil {
		return err
	}

	console.Logger.Debug("create %s", jsonFileName)

	return nil
}

func (g *Gen) writeYAMLModel(config *Config, dump *Dump) error {
	yamlFileName := outputFile(config, dump.Source, "yaml")

	b, err := g.json(dump)
	if err != nil {
		return err
	}

	y, err := g.jsonToYAML(b)
	if err != nil {
		return fmt.Errorf("cannot covert json to yaml error: %s", err)
	}

	err = g.writeFile(y, yamlFileName)
	if err != nil {
		return err
	}

	console.Logger.Debug("create %s", yamlFileName)

	return nil
}

func (g *Gen) writeFile(b []byte, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	defer f.Close()

	_, err = f.Write(b)

	return err
}

func outputFile(config *Config, source, ext string) string {
	return filepath.Join(config.OutputDir, baseName(source)+ModelSuffix+"."+ext)
}

func baseName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// checkOutputNames rejects inputs whose dumps would overwrite each other.
func checkOutputNames(inputs []string) error {
	seen := make(map[string]string, len(inputs))
	for _, input := range inputs {
		name := baseName(input)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("inputs %s and %s would write the same model file", prev, input)
		}
		seen[name] = input
	}
	return nil
}

func splitInputs(inputs string) []string {
	var result []string
	for _, input := range strings.Split(inputs, ",") {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		result = append(result, filepath.Clean(input))
	}
	return result
}
