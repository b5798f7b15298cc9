package repository

import (
	"testing"

	"job-tracker/internal/domain/job"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestBuildListFilter(t *testing.T) {
	cases := []struct {
		name   string
		filter ListFilter
		want   bson.M
	}{
		{"empty", ListFilter{}, bson.M{}},
		{"status only", ListFilter{Status: "saved"}, bson.M{"status": "saved"}},
		{"platform only", ListFilter{Platform: "linkedin"}, bson.M{"platform": "linkedin"}},
		{"both", ListFilter{Status: "applied", Platform: "indeed"}, bson.M{"status": "applied", "platform": "indeed"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := buildListFilter(tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for k, v := range tc.want {
				if got[k] != v {
					t.Fatalf("key %q: got %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestSearchFilter_EscapesMetacharacters(t *testing.T) {
	filter := searchFilter("c++ (remote).*")

	or, ok := filter["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("expected $or with two branches, got %v", filter)
	}

	title := or[0]["title"].(bson.M)
	if title["$options"] != "i" {
		t.Fatalf("expected case-insensitive option, got %v", title["$options"])
	}
	pattern := title["$regex"].(string)
	want := `c\+\+ \(remote\)\.\*`
	if pattern != want {
		t.Fatalf("pattern not escaped: got %q, want %q", pattern, want)
	}

	company := or[1]["company"].(bson.M)
	if company["$regex"].(string) != want {
		t.Fatalf("company pattern diverges from title pattern")
	}
}

func TestSetFields_DropsNilAndRestrictsSubset(t *testing.T) {
	title := "Engineer"
	status := "applied"
	set := setFields(job.Update{Title: &title, Status: &status})

	if len(set) != 2 {
		t.Fatalf("expected 2 set fields, got %v", set)
	}
	if set["title"] != "Engineer" || set["status"] != "applied" {
		t.Fatalf("unexpected set document: %v", set)
	}
	for _, forbidden := range []string{"url", "platform", "description", "date_saved", "_id"} {
		if _, ok := set[forbidden]; ok {
			t.Fatalf("update set must never touch %q", forbidden)
		}
	}

	if got := setFields(job.Update{}); len(got) != 0 {
		t.Fatalf("empty update should produce empty set, got %v", got)
	}
}
