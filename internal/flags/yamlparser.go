package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"unsafe"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from an yaml formatted file. The returned errors
// can be of the type flags.Error. Call it after the command line has been parsed: the flags parser
// applies `default` values at the end of parsing and would overwrite anything read before.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Parse the file. Pass into the decoder the location of the file and the support for recursive
	// directories. This allows you to reference files in subdirs
	return y.parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads the YAML segments from the given reader.
func (y *YamlParser) Parse(config io.Reader) error {
	return y.parse(config)
}

// parse is an internal function which takes an input stream (a reader) and parses YAML segments
// one after another, using the provided decode options. This allows you to have multiple individual
// YAML segments within one physical file / input stream, all separated by triple dashes (`---`).
func (y *YamlParser) parse(config io.Reader, opts ...yaml.DecodeOption) error {

	// Create a new decoder
	decoder := yaml.NewDecoder(config, opts...)

	i := 0
	for {
		i++

		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseSegment will get the "segment" from our input stream and try to match it key = name to our
// commands or option groups. E.g. -- top level yaml line "general:" will be matched to a group
// with the short description "General". If neither a command nor a group matches, the parser fails.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		group := y.findGroup(name)
		if group == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command or group '%s'", name),
			})
		}

		data := groupData(group)
		if data == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("option command or group '%s' has no data", name),
			})
		}

		if conv, err := yaml.Marshal(withoutExplicit(group, val)); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, data); err != nil {
			return errors.Wrapf(err, "Could not read section '%s'", name)
		}
	}
	return nil
}

// withoutExplicit drops the keys of options that were given on the command line or through their
// environment variable. Those take precedence over the configuration file. Options which only hold their
// `default` value are kept, so the file can replace them.
func withoutExplicit(group *flags.Group, val interface{}) interface{} {
	section, ok := val.(map[string]interface{})
	if !ok {
		return val
	}
	res := make(map[string]interface{}, len(section))
	for key, v := range section {
		if option := group.FindOptionByLongName(key); option != nil && isExplicit(option) {
			log.Debugf("Option --%s is set explicitly, ignoring the configuration value", key)
			continue
		}
		res[key] = v
	}
	return res
}

func isExplicit(option *flags.Option) bool {
	if option.IsSet() && !option.IsSetDefault() {
		return true
	}
	if option.EnvDefaultKey != "" {
		if _, ok := os.LookupEnv(option.EnvDefaultKey); ok {
			return true
		}
	}
	return false
}

// findGroup looks up the name first among the commands and then among the option groups
func (y *YamlParser) findGroup(name string) *flags.Group {
	if command := y.parser.Find(name); command != nil {
		return command.Group
	}
	return y.parser.Group.Find(name)
}

// groupData returns the pointer the group was created with. We need to complicate things a bit here,
// as the flags library does not allow direct access to the underlying data structure. It's not really
// a nice way to do it, but currently there's no other way to implement this.
func groupData(group *flags.Group) interface{} {
	dereferencedGroup := reflect.Indirect(reflect.ValueOf(group))
	dataField := dereferencedGroup.FieldByName("data")
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	dataFieldPtr := dataField.Elem() // ptr / *Host
	if !dataFieldPtr.IsValid() {
		return nil
	}
	return dataFieldPtr.Interface()
}
