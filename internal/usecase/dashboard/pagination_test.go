package dashboard_test

import (
	"testing"

	"github.com/hellofixo/fixit-admin/internal/usecase/dashboard"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name                          string
		page, limit                   int
		wantPage, wantLimit, wantOffs int
	}{
		{"defaults", 0, 0, 1, 10, 0},
		{"negative page", -3, 10, 1, 10, 0},
		{"second page", 2, 10, 2, 10, 10},
		{"custom size", 3, 25, 3, 25, 50},
		{"size capped", 1, 1000, 1, 100, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit, offset := dashboard.NormalizePage(tc.page, tc.limit)
			if page != tc.wantPage || limit != tc.wantLimit || offset != tc.wantOffs {
				t.Fatalf("NormalizePage(%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tc.page, tc.limit, page, limit, offset,
					tc.wantPage, tc.wantLimit, tc.wantOffs)
			}
		})
	}
}
