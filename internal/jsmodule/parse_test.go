// SPDX-License-Identifier: MPL-2.0

package jsmodule

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse_PrettierOutput(t *testing.T) {
	t.Parallel()

	src := `module.exports = {
  docs: [
    {
      type: 'category',
      label: 'Get Started',
      items: ['latest/tutorial/introduction', 'latest/tutorial/quick-start'],
    },
    { type: 'doc', id: "latest/faq", customProps: { tags: ['mac'] } },
  ],
  api: [],
  'quoted-key': [1, true, null, -2.5],
};
`
	v, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	root, ok := v.(*Object)
	if !ok {
		t.Fatalf("root is %T, want *Object", v)
	}
	wantKeys := []string{"docs", "api", "quoted-key"}
	if len(root.Fields) != len(wantKeys) {
		t.Fatalf("got %d fields, want %d", len(root.Fields), len(wantKeys))
	}
	for i, k := range wantKeys {
		if root.Fields[i].Key != k {
			t.Errorf("field %d = %q, want %q", i, root.Fields[i].Key, k)
		}
	}

	docs := root.Fields[0].Value.(*Array)
	category := docs.Elems[0].(*Object)
	if label, _ := category.GetString("label"); label != "Get Started" {
		t.Errorf("label = %q, want %q", label, "Get Started")
	}
	items := category.Fields[2].Value.(*Array)
	if got := items.Elems[1]; got != String("latest/tutorial/quick-start") {
		t.Errorf("items[1] = %#v", got)
	}

	literals := root.Fields[2].Value.(*Array)
	want := []Value{Literal("1"), Literal("true"), Literal("null"), Literal("-2.5")}
	for i, w := range want {
		if literals.Elems[i] != w {
			t.Errorf("literal %d = %#v, want %#v", i, literals.Elems[i], w)
		}
	}
}

func TestParse_CompactOutput(t *testing.T) {
	t.Parallel()

	v, err := Parse([]byte(`module.exports = {docs:[{type:"category",label:"App",items:["latest/api/app"]}],api:[]};`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	root := v.(*Object)
	if len(root.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(root.Fields))
	}
}

func TestParse_CompactKeys(t *testing.T) {
	t.Parallel()

	v, err := Parse([]byte(`module.exports = {a:"x",'b':'y',"c":1,d:[],e:{f:null}};`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := NewObject(
		Field{Key: "a", Value: String("x")},
		Field{Key: "b", Value: String("y")},
		Field{Key: "c", Value: Literal("1")},
		Field{Key: "d", Value: &Array{Elems: []Value{}}},
		Field{Key: "e", Value: NewObject(Field{Key: "f", Value: Literal("null")})},
	)
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Parse() = %#v, want %#v", v, want)
	}
}

func TestParse_JavaScriptStringEscapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lit  string
		want string
	}{
		{name: "escaped single quote", lit: `'it\'s'`, want: "it's"},
		{name: "escaped double quote", lit: `"say \"hi\""`, want: `say "hi"`},
		{name: "backslash in single quotes", lit: `'a\\b'`, want: `a\b`},
		{name: "backslash in double quotes", lit: `"a\\b"`, want: `a\b`},
		{name: "other quote unescaped", lit: `'say "hi"'`, want: `say "hi"`},
		{name: "control escapes", lit: `"a\nb\tc\rd\be\ff\vg\0"`, want: "a\nb\tc\rd\be\ff\vg\x00"},
		{name: "hex escape", lit: `'\x41'`, want: "A"},
		{name: "unicode escape", lit: `"caf\u00e9"`, want: "caf\u00e9"},
		{name: "code point escape", lit: `'\u{1F600}'`, want: "\U0001F600"},
		{name: "surrogate pair", lit: `"\uD83D\uDE00"`, want: "\U0001F600"},
		{name: "line separator", lit: `"a\u2028b"`, want: "a\u2028b"},
		{name: "identity escape", lit: `'\/\q'`, want: "/q"},
		{name: "line continuation", lit: "'a\\\nb'", want: "ab"},
		{name: "raw unicode", lit: `'Grüße'`, want: "Grüße"},
		{name: "yaml indicators", lit: `'a: b, #c {d} [e] &f *g !h'`, want: "a: b, #c {d} [e] &f *g !h"},
		{name: "empty", lit: `''`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := Parse([]byte("module.exports = { label: " + tt.lit + " };"))
			if err != nil {
				t.Fatalf("Parse(%s) error: %v", tt.lit, err)
			}
			got, ok := v.(*Object).GetString("label")
			if !ok || got != tt.want {
				t.Errorf("Parse(%s) label = %q, want %q", tt.lit, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "empty", src: ""},
		{name: "no export", src: `const sidebars = {};`},
		{name: "no assignment", src: `module.exports {};`},
		{name: "scalar export", src: `module.exports = 'docs';`},
		{name: "identifier value", src: `module.exports = { docs: sidebarDocs };`},
		{name: "missing value", src: `module.exports = { docs };`},
		{name: "unterminated", src: `module.exports = { docs: [ };`},
		{name: "unterminated string", src: `module.exports = { docs: ['a };`},
		{name: "newline in string", src: "module.exports = { docs: ['a\nb'] };"},
		{name: "template literal", src: "module.exports = { docs: [`a`] };"},
		{name: "octal escape", src: `module.exports = { docs: ['\101'] };`},
		{name: "bad unicode escape", src: `module.exports = { docs: ['\u12'] };`},
		{name: "line comment", src: "module.exports = { docs: [\n// old\n'a'] };"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("error %v does not wrap ErrSyntax", err)
			}
		})
	}
}

func TestObject_SetPreservesOrder(t *testing.T) {
	t.Parallel()

	obj := NewObject(
		Field{Key: "type", Value: String("category")},
		Field{Key: "label", Value: String("Old")},
	)
	obj.Set("label", String("New"))
	obj.Set("items", &Array{})

	if obj.Fields[1].Key != "label" || obj.Fields[1].Value != String("New") {
		t.Errorf("label not replaced in place: %#v", obj.Fields)
	}
	if obj.Fields[2].Key != "items" {
		t.Errorf("items not appended: %#v", obj.Fields)
	}
}

func TestObject_CloneIsDeep(t *testing.T) {
	t.Parallel()

	inner := &Array{Elems: []Value{String("a")}}
	obj := NewObject(Field{Key: "items", Value: inner})
	clone := obj.Clone()
	inner.Elems = append(inner.Elems, String("b"))

	got, _ := clone.Get("items")
	if n := len(got.(*Array).Elems); n != 1 {
		t.Errorf("clone shares array storage, len = %d", n)
	}
}
