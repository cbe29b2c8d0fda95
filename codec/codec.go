// Package codec turns application values into frame payloads and back.
package codec

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Codec encodes one value into one payload.
type Codec interface {
	Name() string
	ContentType() string
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

var (
	// JSON encodes values as compact JSON, without raw newlines.
	JSON Codec = jsonCodec{}
	// YAML encodes values as YAML documents.
	YAML Codec = yamlCodec{}
	// Raw passes []byte and string values through.
	Raw Codec = rawCodec{}
)

var (
	codecsMu sync.RWMutex
	codecs   = map[string]Codec{}
)

func init() {
	for _, c := range []Codec{JSON, YAML, Raw} {
		Register(c)
	}
}

// Register makes c available to Lookup under c.Name().
func Register(c Codec) {
	if c == nil {
		panic("can't register nil codec")
	}
	codecsMu.Lock()
	defer codecsMu.Unlock()
	codecs[c.Name()] = c
}

// Lookup returns the codec registered under name.
func Lookup(name string) (Codec, error) {
	codecsMu.RLock()
	defer codecsMu.RUnlock()
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("unknown codec %q", name)
	}
	return c, nil
}

// Names returns the names of all registered codecs, sorted.
func Names() []string {
	codecsMu.RLock()
	defer codecsMu.RUnlock()
	ret := make([]string, 0, len(codecs))
	for name := range codecs {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }
func (jsonCodec) ContentType() string { return "application/json" }
func (jsonCodec) Marshal(v interface{}) ([]byte, error) { return json.Marshal(v) }
func (jsonCodec) Unmarshal(b []byte, v interface{}) error { return json.Unmarshal(b, v) }

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }
func (yamlCodec) ContentType() string { return "application/yaml" }
func (yamlCodec) Marshal(v interface{}) ([]byte, error) { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(b []byte, v interface{}) error { return yaml.Unmarshal(b, v) }

type rawCodec struct{}

func (rawCodec) Name() string { return "raw" }
func (rawCodec) ContentType() string { return "application/octet-stream" }

func (rawCodec) Marshal(v interface{}) ([]byte, error) {
	switch v := v.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}
	return nil, fmt.Errorf("raw: can't marshal %T", v)
}

func (rawCodec) Unmarshal(b []byte, v interface{}) error {
	switch v := v.(type) {
	case *[]byte:
		*v = append((*v)[:0], b...)
		return nil
	case *string:
		*v = string(b)
		return nil
	}
	return fmt.Errorf("raw: can't unmarshal into %T", v)
}
