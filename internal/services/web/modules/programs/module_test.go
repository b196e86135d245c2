package programs

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sofealabs/impactboard/internal/impact"
	module "github.com/sofealabs/impactboard/internal/services/web/module"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
)

func mountForTest(t *testing.T) module.Mount {
	t.Helper()

	mount, err := New().Mount(module.Dependencies{Store: impact.Fixtures()})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount
}

func TestModuleIDReturnsPrograms(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "programs" {
		t.Fatalf("ID() = %q, want %q", got, "programs")
	}
}

func TestMountClaimsAllProgramPrefixes(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	want := []string{routepath.AIS, routepath.EIS, routepath.HIS, routepath.SIS}
	if len(mount.Prefixes) != len(want) {
		t.Fatalf("prefixes = %v, want %v", mount.Prefixes, want)
	}
	for i, prefix := range want {
		if mount.Prefixes[i] != prefix {
			t.Fatalf("prefix[%d] = %q, want %q", i, mount.Prefixes[i], prefix)
		}
	}
}

func TestProgramPagesRenderAwardeeRows(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	cases := []struct {
		path string
		name string
	}{
		{routepath.AIS, "Dr. Sarah Chen"},
		{routepath.EIS, "Dr. Noah Lee"},
		{routepath.HIS, "Dr. Amara Diallo"},
		{routepath.SIS, "Dr. Omar Haddad"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		rr := httptest.NewRecorder()
		mount.Handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", tc.path, rr.Code, http.StatusOK)
		}
		if !strings.Contains(rr.Body.String(), tc.name) {
			t.Fatalf("GET %s body missing %q", tc.path, tc.name)
		}
	}
}

func TestProgramPageLinksAwardeeDetails(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodGet, routepath.AIS, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if !strings.Contains(rr.Body.String(), routepath.Awardee("AIS-Awardee-1")) {
		t.Fatal("program page missing awardee detail link")
	}
}

func TestProgramPageRejectsNonGet(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodDelete, routepath.HIS, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}
