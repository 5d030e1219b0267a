package main

import (
	"reflect"
	"testing"
)

const sampleID = "7b1e3c92-5b1f-4c21-9f6e-2f4c0db1a001"

func TestRewriteDirectProjectLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"freeflow"},
			want: []string{"freeflow"},
		},
		{
			name: "direct project id first token",
			in:   []string{"freeflow", sampleID},
			want: []string{"freeflow", "projects", "show", sampleID},
		},
		{
			name: "direct project id after value flag",
			in:   []string{"freeflow", "--api-url", "http://localhost:8000", sampleID},
			want: []string{"freeflow", "--api-url", "http://localhost:8000", "projects", "show", sampleID},
		},
		{
			name: "direct project id after equals flag",
			in:   []string{"freeflow", "--api-url=http://localhost:8000", sampleID},
			want: []string{"freeflow", "--api-url=http://localhost:8000", "projects", "show", sampleID},
		},
		{
			name: "direct project id after bool flag",
			in:   []string{"freeflow", "--pretty", sampleID},
			want: []string{"freeflow", "--pretty", "projects", "show", sampleID},
		},
		{
			name: "direct project id after double dash",
			in:   []string{"freeflow", "--pretty", "--", sampleID},
			want: []string{"freeflow", "--pretty", "--", "projects", "show", sampleID},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"freeflow", "projects", "show", sampleID},
			want: []string{"freeflow", "projects", "show", sampleID},
		},
		{
			name: "non-uuid token not rewritten",
			in:   []string{"freeflow", "wat"},
			want: []string{"freeflow", "wat"},
		},
		{
			name: "uuid with bad hyphen positions not rewritten",
			in:   []string{"freeflow", "7b1e3c925-b1f-4c21-9f6e-2f4c0db1a001"},
			want: []string{"freeflow", "7b1e3c925-b1f-4c21-9f6e-2f4c0db1a001"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectProjectLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectProjectLookupArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
