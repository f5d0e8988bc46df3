package stats

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/ashhadm/CS-249/internal/seqio"
)

func contigs(lengths ...int) (cs []seqio.Contig) {
	for _, l := range lengths {
		cs = append(cs, seqio.Contig{Seq: strings.Repeat("A", l)})
	}
	return
}

func Test_Summarize(t *testing.T) {
	tests := []struct {
		name    string
		contigs []seqio.Contig
		want    Summary
	}{
		{
			"empty",
			nil,
			Summary{},
		},
		{
			"single contig",
			[]seqio.Contig{{Seq: "ACGTACGT"}},
			Summary{Count: 1, TotalLength: 8, Longest: 8, Shortest: 8, N50: 8, L50: 1, GC: 0.5},
		},
		{
			"five contigs",
			contigs(2, 3, 4, 5, 6),
			// 6+5 = 11 of 20
			Summary{Count: 5, TotalLength: 20, Longest: 6, Shortest: 2, N50: 5, L50: 2},
		},
		{
			"long tail",
			contigs(100, 10, 10, 10, 10, 10),
			Summary{Count: 6, TotalLength: 150, Longest: 100, Shortest: 10, N50: 100, L50: 1},
		},
		{
			"ambiguous bases left out of GC",
			[]seqio.Contig{{Seq: "GGNNNNAT"}},
			Summary{Count: 1, TotalLength: 8, Longest: 8, Shortest: 8, N50: 8, L50: 1, GC: 0.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.contigs); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_Write(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []string{"dbg"}, []Summary{Summarize([]seqio.Contig{{Seq: "ACGTACGT"}})})
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Write() = %q, want a header and a row", buf.String())
	}
	if fields := strings.Fields(lines[1]); !reflect.DeepEqual(fields, []string{"dbg", "1", "8", "8", "8", "8", "1", "50.00%"}) {
		t.Errorf("Write() row = %v", fields)
	}
}
