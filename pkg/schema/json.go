package schema

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/elaraai/east-ui-sub007/internal/errors"
)

// jsonValue is the wire envelope for a serialized Value.
// encoding/json emits map keys in sorted order, which together with the
// fixed envelope makes serialization deterministic.
type jsonValue struct {
	Kind   string                     `json:"kind"`
	Value  json.RawMessage            `json:"value,omitempty"`
	Items  []json.RawMessage          `json:"items,omitempty"`
	Fields map[string]json.RawMessage `json:"fields,omitempty"`
	Case   string                     `json:"case,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	env := jsonValue{Kind: v.Kind.String()}

	switch v.Kind {
	case KindNull:
		// Envelope kind only
	case KindBoolean:
		raw, _ := json.Marshal(v.Bool)
		env.Value = raw
	case KindInteger:
		raw, _ := json.Marshal(v.Int)
		env.Value = raw
	case KindFloat:
		// json.Marshal rejects non-finite floats; catch them here so the
		// failure carries a code instead of leaking a half-built envelope.
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			return nil, errors.New("E104").WithDetail(fmt.Sprintf("float %v", v.Float))
		}
		raw, _ := json.Marshal(v.Float)
		env.Value = raw
	case KindString:
		raw, err := json.Marshal(v.Str)
		if err != nil {
			return nil, err
		}
		env.Value = raw
	case KindDateTime:
		raw, _ := json.Marshal(v.Time.UTC().Format(time.RFC3339Nano))
		env.Value = raw
	case KindArray:
		env.Items = make([]json.RawMessage, 0, len(v.Items))
		for _, item := range v.Items {
			raw, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			env.Items = append(env.Items, raw)
		}
	case KindStruct:
		env.Fields = make(map[string]json.RawMessage, len(v.Fields))
		for key, field := range v.Fields {
			raw, err := field.MarshalJSON()
			if err != nil {
				return nil, err
			}
			env.Fields[key] = raw
		}
	case KindVariant:
		if v.Case == "" {
			return nil, errors.New("E103")
		}
		env.Case = v.Case
		if v.Payload != nil {
			raw, err := v.Payload.MarshalJSON()
			if err != nil {
				return nil, err
			}
			env.Value = raw
		}
	case KindBlob:
		raw, _ := json.Marshal(base64.StdEncoding.EncodeToString(v.Bytes))
		env.Value = raw
	default:
		return nil, errors.New("E102").WithDetail(fmt.Sprintf("kind %d", v.Kind))
	}

	return json.Marshal(env)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var env jsonValue
	if err := json.Unmarshal(data, &env); err != nil {
		return errors.New("E101").Wrap(err)
	}

	switch env.Kind {
	case "null":
		*v = Null()
	case "boolean":
		var b bool
		if err := json.Unmarshal(env.Value, &b); err != nil {
			return errors.New("E101").Wrap(err)
		}
		*v = Boolean(b)
	case "integer":
		var i int64
		if err := json.Unmarshal(env.Value, &i); err != nil {
			return errors.New("E101").Wrap(err)
		}
		*v = Integer(i)
	case "float":
		var f float64
		if err := json.Unmarshal(env.Value, &f); err != nil {
			return errors.New("E101").Wrap(err)
		}
		*v = Float(f)
	case "string":
		var s string
		if err := json.Unmarshal(env.Value, &s); err != nil {
			return errors.New("E101").Wrap(err)
		}
		*v = String_(s)
	case "datetime":
		var s string
		if err := json.Unmarshal(env.Value, &s); err != nil {
			return errors.New("E101").Wrap(err)
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return errors.New("E101").Wrap(err)
		}
		*v = DateTime(t)
	case "array":
		items := make([]Value, 0, len(env.Items))
		for _, raw := range env.Items {
			var item Value
			if err := item.UnmarshalJSON(raw); err != nil {
				return err
			}
			items = append(items, item)
		}
		*v = Value{Kind: KindArray, Items: items}
	case "struct":
		fields := make(map[string]Value, len(env.Fields))
		for key, raw := range env.Fields {
			var field Value
			if err := field.UnmarshalJSON(raw); err != nil {
				return err
			}
			fields[key] = field
		}
		*v = Value{Kind: KindStruct, Fields: fields}
	case "variant":
		if env.Case == "" {
			return errors.New("E103")
		}
		payload := Null()
		if env.Value != nil {
			if err := payload.UnmarshalJSON(env.Value); err != nil {
				return err
			}
		}
		*v = Variant(env.Case, payload)
	case "blob":
		var s string
		if err := json.Unmarshal(env.Value, &s); err != nil {
			return errors.New("E101").Wrap(err)
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return errors.New("E101").Wrap(err)
		}
		*v = Value{Kind: KindBlob, Bytes: b}
	default:
		return errors.New("E102").WithDetail(fmt.Sprintf("kind %q", env.Kind))
	}

	return nil
}

// ToJSON serializes the value deterministically.
func ToJSON(v Value) ([]byte, error) {
	return json.Marshal(v)
}

// FromJSON parses a serialized value.
func FromJSON(data []byte) (Value, error) {
	var v Value
	if err := json.Unmarshal(data, &v); err != nil {
		return Value{}, err
	}
	return v, nil
}
