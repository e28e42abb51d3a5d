package telegraph

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestNodeMarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "text node is a bare string",
			node: Text("hello"),
			want: `"hello"`,
		},
		{
			name: "zero value is an empty string",
			node: Node{},
			want: `""`,
		},
		{
			name: "element without attrs or children",
			node: Elem("hr"),
			want: `{"tag":"hr"}`,
		},
		{
			name: "element with children",
			node: Elem("p", Text("a"), Elem("b", Text("c")), Text("d")),
			want: `{"tag":"p","children":["a",{"tag":"b","children":["c"]},"d"]}`,
		},
		{
			name: "link carries href",
			node: Link("https://example.com", Text("t")),
			want: `{"tag":"a","attrs":{"href":"https://example.com"},"children":["t"]}`,
		},
		{
			name: "image carries src",
			node: Image("/file/x.png"),
			want: `{"tag":"img","attrs":{"src":"/file/x.png"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(tt.node)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNodeUnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Node
		wantErr error
	}{
		{
			name:  "bare string becomes a text node",
			input: `"hello"`,
			want:  Text("hello"),
		},
		{
			name:  "object becomes an element",
			input: `{"tag":"p","children":["a"]}`,
			want:  Elem("p", Text("a")),
		},
		{
			name:  "attrs are decoded",
			input: `{"tag":"a","attrs":{"href":"x"},"children":["t"]}`,
			want:  Link("x", Text("t")),
		},
		{
			name:  "null resets the node",
			input: `null`,
			want:  Node{},
		},
		{
			name:    "numbers are not nodes",
			input:   `42`,
			wantErr: ErrParse,
		},
		{
			name:    "arrays are not nodes",
			input:   `["a"]`,
			wantErr: ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got Node
			err := json.Unmarshal([]byte(tt.input), &got)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("unmarshal = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestNodeRoundTrip(t *testing.T) {
	t.Parallel()

	tree := []Node{
		Text("intro "),
		Elem("p",
			Text("see "),
			Link("https://example.com", Text("the docs")),
			Text(" for details"),
		),
		Elem("figure",
			Image("/file/chart.png"),
			Elem("figcaption", Text("views over time")),
		),
	}

	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded []Node
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(tree, decoded) {
		t.Errorf("round trip changed the tree:\n before %#v\n after  %#v", tree, decoded)
	}
}

func TestNodeUnmarshalJSON_MixedContent(t *testing.T) {
	t.Parallel()

	const payload = `[ "a", {"tag":"br"}, "b" ]`

	var nodes []Node
	if err := json.Unmarshal([]byte(payload), &nodes); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	if nodes[0].Text != "a" || nodes[2].Text != "b" {
		t.Errorf("text nodes = %q, %q, want a, b", nodes[0].Text, nodes[2].Text)
	}
	if nodes[1].Element == nil || nodes[1].Element.Tag != "br" {
		t.Errorf("middle node = %#v, want br element", nodes[1])
	}
}
