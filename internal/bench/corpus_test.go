package bench

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Header
		wantBody string
		wantErr  bool
	}{
		{
			name: "valid header",
			input: `# Source: UD_Japanese-GSD/ja_gsd-ud-test.conllu
# Title: test-s1
# Genre: news

私 の 名前 は 中野 です 。`,
			want: Header{
				Source: "UD_Japanese-GSD/ja_gsd-ud-test.conllu",
				Title:  "test-s1",
				Genre:  "news",
			},
			wantBody: "私 の 名前 は 中野 です 。",
		},
		{
			name: "missing source",
			input: `# Title: test-s1

東京 都`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, body, err := ParseHeader(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHeader() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseHeader() header = %+v, want %+v", got, tt.want)
			}
			if body != tt.wantBody {
				t.Errorf("ParseHeader() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseGold(t *testing.T) {
	text, words := ParseGold("私 の 名前 。\npage 123")

	if text != "私の名前。\npage123" {
		t.Errorf("text = %q", text)
	}
	want := []Word{
		{Text: "私", Start: 0, End: 3},
		{Text: "の", Start: 3, End: 6},
		{Text: "名前", Start: 6, End: 12},
		{Text: "。", Start: 12, End: 15},
		{Text: "page", Start: 16, End: 20},
		{Text: "123", Start: 20, End: 23},
	}
	if !slices.Equal(words, want) {
		t.Errorf("words = %+v, want %+v", words, want)
	}
	for _, w := range words {
		if text[w.Start:w.End] != w.Text {
			t.Errorf("word %q does not match text[%d:%d]", w.Text, w.Start, w.End)
		}
	}

	// the full stop is left out of the boundaries
	got := Boundaries(words)
	wantB := []int{0, 3, 6, 12, 16, 20, 23}
	if !slices.Equal(got, wantB) {
		t.Errorf("Boundaries() = %v, want %v", got, wantB)
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_doc.txt")
	content := `# Source: https://example.com
# Title: Test Title

東京 都 に 住む`

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}

	if doc.ID != "test_doc" {
		t.Errorf("ID = %q, want %q", doc.ID, "test_doc")
	}
	if doc.Title != "Test Title" {
		t.Errorf("Title = %q, want %q", doc.Title, "Test Title")
	}
	if doc.Text != "東京都に住む" {
		t.Errorf("Text = %q", doc.Text)
	}
	if len(doc.Words) != 4 {
		t.Errorf("got %d words, want 4", len(doc.Words))
	}
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"doc1.txt", "doc2.txt"} {
		content := `# Source: https://example.com
# Title: Title

です 。`
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Create a non-txt file that should be ignored
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Readme"), 0644); err != nil {
		t.Fatal(err)
	}

	docs, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}

	if len(docs) != 2 {
		t.Errorf("got %d documents, want 2", len(docs))
	}
}

func TestLoadCorpus_BadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.txt"), []byte("no header"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCorpus(dir); err == nil {
		t.Error("expected an error for a file without a Source header")
	}
}
