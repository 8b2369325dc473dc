// Package tinyseg provides dictionary-free Japanese word segmentation.
//
// Segmentation follows TinySegmenter: a compact statistical model scores
// every position between two characters of a sentence from the surrounding
// characters, their character classes and the preceding decisions. No
// dictionary is loaded; the trained weights are compiled into the binary.
//
// # Quick Start
//
//	for _, w := range tinyseg.Words("私の名前は中野です") {
//	    fmt.Println(w) // 私 の 名前 は 中野 です
//	}
//
// # Streaming
//
// A Tokenizer reads its input through a fixed-size buffer and emits tokens
// lazily:
//
//	tok := tinyseg.New(r)
//	for t, err := range tok.All() {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(t.Text, t.Start, t.End)
//	}
//
// Tokens never span a sentence boundary. Runs of punctuation are dropped,
// runs of digits are kept together and a surrogate pair is never split.
// Offsets are UTF-8 byte offsets into the input, optionally remapped with
// WithOffsetCorrector.
//
// # Thread Safety
//
// A Tokenizer is not safe for concurrent use. The model tables are shared
// and read-only, so any number of Tokenizers may run in parallel; see the
// batch package for a pooled, context-aware front end.
package tinyseg
