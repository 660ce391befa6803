package wire

import (
	"reflect"
	"testing"
)

func TestParserFramingRoundTrip(t *testing.T) {
	words := []string{"!re", "=name=ether1", "=addr=1.2.3.4/24"}
	data := EncodeSentence(words...)

	p := NewParser()
	sentences, err := p.Feed(data)
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	if !reflect.DeepEqual(sentences[0], words) {
		t.Errorf("sentence = %v, want %v", sentences[0], words)
	}
	if p.Pending() {
		t.Error("expected no pending state after a complete sentence")
	}
}

func TestParserPureTerminatorNotEmitted(t *testing.T) {
	p := NewParser()
	sentences, err := p.Feed([]byte{0x00})
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if len(sentences) != 0 {
		t.Errorf("expected no sentences from a bare terminator, got %v", sentences)
	}
}

func TestParserFragmentationByteAtATime(t *testing.T) {
	sentence1 := []string{"!re", "=name=ether1"}
	sentence2 := []string{"!re", "=name=ether2"}
	sentence3 := []string{"!done"}

	var data []byte
	data = append(data, EncodeSentence(sentence1...)...)
	data = append(data, EncodeSentence(sentence2...)...)
	data = append(data, EncodeSentence(sentence3...)...)

	p := NewParser()
	var got [][]string
	for i := 0; i < len(data); i++ {
		sentences, err := p.Feed(data[i : i+1])
		if err != nil {
			t.Fatalf("Feed failed at byte %d: %v", i, err)
		}
		got = append(got, sentences...)
	}

	want := [][]string{sentence1, sentence2, sentence3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fragmented parse = %v, want %v", got, want)
	}
	if p.Pending() {
		t.Error("expected no pending state after complete stream")
	}
}

func TestParserFragmentationArbitraryPartition(t *testing.T) {
	sentence := []string{"!re", "=name=x", "=addr=10.0.0.1"}
	data := EncodeSentence(sentence...)

	// partitions to try: whole, halves, thirds
	partitions := [][]int{
		{len(data)},
		{len(data) / 2, len(data) - len(data)/2},
		{len(data) / 3, len(data) / 3, len(data) - 2*(len(data)/3)},
	}

	for _, sizes := range partitions {
		p := NewParser()
		var got [][]string
		offset := 0
		for _, size := range sizes {
			if size <= 0 {
				continue
			}
			sentences, err := p.Feed(data[offset : offset+size])
			if err != nil {
				t.Fatalf("Feed failed: %v", err)
			}
			got = append(got, sentences...)
			offset += size
		}
		if len(got) != 1 || !reflect.DeepEqual(got[0], sentence) {
			t.Errorf("partition %v: got %v, want [%v]", sizes, got, sentence)
		}
		if p.Pending() {
			t.Errorf("partition %v: expected residual empty, still pending", sizes)
		}
	}
}

func TestParserHaltsOnIncompleteWord(t *testing.T) {
	data := EncodeSentence("!done")
	// Feed everything except the last byte; parsing must not emit anything
	// and must not error, only wait for more data.
	p := NewParser()
	sentences, err := p.Feed(data[:len(data)-1])
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if len(sentences) != 0 {
		t.Fatalf("expected no sentences yet, got %v", sentences)
	}
	if !p.Pending() {
		t.Fatal("expected pending state while a word is incomplete")
	}

	sentences, err = p.Feed(data[len(data)-1:])
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if len(sentences) != 1 || sentences[0][0] != "!done" {
		t.Fatalf("expected [!done] after remaining byte, got %v", sentences)
	}
}

func TestParserMultipleSentencesInOneChunk(t *testing.T) {
	s1 := []string{"!re", "=a=1"}
	s2 := []string{"!re", "=a=2"}
	s3 := []string{"!done"}

	var data []byte
	data = append(data, EncodeSentence(s1...)...)
	data = append(data, EncodeSentence(s2...)...)
	data = append(data, EncodeSentence(s3...)...)

	p := NewParser()
	sentences, err := p.Feed(data)
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	want := [][]string{s1, s2, s3}
	if !reflect.DeepEqual(sentences, want) {
		t.Errorf("got %v, want %v", sentences, want)
	}
}
