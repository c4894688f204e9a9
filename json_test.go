package strview

import (
	stdjson "encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestMarshalJSON(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", `"hello"`},
		{"empty", "", `""`},
		{"quotes", `say "hi"`, `"say \"hi\""`},
		{"control", "a\nb\tc", `"a\nb\tc"`},
		{"html_not_escaped", "<b>&</b>", `"<b>&</b>"`},
		{"unicode", "héllo 世界", `"héllo 世界"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := FromString(tc.input).MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON failed: %v", err)
			}
			if string(data) != tc.want {
				t.Errorf("MarshalJSON(%q) = %s, want %s", tc.input, data, tc.want)
			}
		})
	}
}

func TestMarshalJSONSubView(t *testing.T) {
	v := FromString(`{"name":"strview"}`).Slice(9, 16)
	data, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(data) != `"strview"` {
		t.Errorf("Expected only the viewed bytes, got %s", data)
	}
}

func TestMarshalJSONOwnsResult(t *testing.T) {
	first, err := FromString("first").MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if _, err := FromString("second value").MarshalJSON(); err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(first) != `"first"` {
		t.Errorf("Result changed after the stream was reused: %s", first)
	}
}

type jsonDoc struct {
	Key   View   `json:"key"`
	Value View   `json:"value,omitempty"`
	Tags  []View `json:"tags"`
}

func TestJSONInsideStruct(t *testing.T) {
	src := FromString("env=prod,eu,<edge>")
	key, rest, _ := src.Split('=')
	doc := jsonDoc{Key: key}
	for tag := range rest.Tokens(',') {
		doc.Tags = append(doc.Tags, tag)
	}

	t.Run("jsoniter", func(t *testing.T) {
		data, err := jsonAPI.Marshal(doc)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		want := `{"key":"env","tags":["prod","eu","<edge>"]}`
		if string(data) != want {
			t.Errorf("Marshal = %s, want %s", data, want)
		}
	})

	t.Run("stdlib", func(t *testing.T) {
		data, err := stdjson.Marshal(doc)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}

		var decoded struct {
			Key  string   `json:"key"`
			Tags []string `json:"tags"`
		}
		if err := stdjson.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if decoded.Key != "env" || strings.Join(decoded.Tags, ",") != "prod,eu,<edge>" {
			t.Errorf("Unexpected round trip: %+v", decoded)
		}
	})
}

func TestMarshalJSONInvalidUTF8(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"single_byte", "a\xffb"},
		{"run_of_bytes", "\xff\xfe"},
		{"truncated_sequence", "ok\xe4\xb8"},
		{"mixed_with_valid", "\xc0世界\x80"},
		{"literal_replacement_char", "a\uFFFDb\xff"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := FromString(tc.input).MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON failed: %v", err)
			}
			if !utf8.Valid(data) {
				t.Fatalf("MarshalJSON produced invalid UTF-8: %q", data)
			}

			// Decoded text must match what encoding/json makes of the same bytes
			var got string
			if err := stdjson.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			stdData, err := stdjson.Marshal(tc.input)
			if err != nil {
				t.Fatalf("Standard library marshal failed: %v", err)
			}
			var want string
			if err := stdjson.Unmarshal(stdData, &want); err != nil {
				t.Fatalf("Standard library unmarshal failed: %v", err)
			}
			if got != want {
				t.Errorf("Decoded %q, want %q", got, want)
			}
		})
	}
}

func TestMarshalJSONInvalidUTF8InsideStruct(t *testing.T) {
	doc := jsonDoc{Key: FromString("k\xff")}
	data, err := jsonAPI.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !utf8.Valid(data) {
		t.Errorf("Marshal produced invalid UTF-8: %q", data)
	}
	if !strings.Contains(string(data), "k\uFFFD") {
		t.Errorf("Expected the invalid byte to become U+FFFD, got %s", data)
	}
}
