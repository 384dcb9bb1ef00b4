package json

import (
	"bytes"
	"strings"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

func TestEncodeUnmarshal(t *testing.T) {
	in := record{Name: "expect", Count: 2}

	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(in); err != nil {
		t.Fatalf("encode returned error: %v", err)
	}

	const want = `{"name":"expect","count":2}` + "\n"
	if buf.String() != want {
		t.Fatalf("encode = %q, want %q", buf.String(), want)
	}

	var out record
	if err := Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if out != in {
		t.Fatalf("unmarshal = %+v, want %+v", out, in)
	}
}

func TestUnmarshalRejectsMalformedInput(t *testing.T) {
	var out record
	if err := Unmarshal([]byte(`{"name":`), &out); err == nil {
		t.Fatal("expected error for truncated payload")
	}
}

func TestEncoderWritesOneLinePerValue(t *testing.T) {
	var buf bytes.Buffer

	enc := NewEncoder(&buf)
	for _, name := range []string{"a", "b"} {
		if err := enc.Encode(record{Name: name}); err != nil {
			t.Fatalf("encode returned error: %v", err)
		}
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("encoded %d lines, want 2: %q", len(lines), buf.String())
	}
	if lines[1] != `{"name":"b"}` {
		t.Fatalf("second line = %q, want %q", lines[1], `{"name":"b"}`)
	}
}

func TestDecoderStreams(t *testing.T) {
	dec := NewDecoder(strings.NewReader(`{"name":"a"} {"name":"b"}`))

	var names []string
	for dec.More() {
		var r record
		if err := dec.Decode(&r); err != nil {
			t.Fatalf("decode returned error: %v", err)
		}
		names = append(names, r.Name)
	}

	if strings.Join(names, ",") != "a,b" {
		t.Fatalf("decoded names = %v, want [a b]", names)
	}
}
