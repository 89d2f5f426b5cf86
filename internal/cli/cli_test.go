package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"cat-registry/internal/adapters/storage/jsonfile"
	"cat-registry/internal/router"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Execute(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func onlyID(t *testing.T, file string) string {
	t.Helper()
	s, err := jsonfile.Open(file)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	items, _ := s.List(context.Background())
	if len(items) != 1 {
		t.Fatalf("expected 1 cat, got %d", len(items))
	}
	return items[0].ID
}

func TestCLI_LocalFile_MenuActions(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cats.json")

	if code, _, errOut := run(t, "--file", file, "add", "--name", "felix", "--color", "black", "--vaccinated", "Yes"); code != 0 {
		t.Fatalf("add failed: %s", errOut)
	}
	id := onlyID(t, file)

	code, out, _ := run(t, "--file", file, "list")
	if code != 0 {
		t.Fatalf("list failed")
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got:\n%s", out)
	}
	if !strings.HasPrefix(lines[0], "Id") || !strings.Contains(lines[0], "Vaccinated") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], id) || !strings.Contains(lines[1], "Felix") || !strings.Contains(lines[1], "Black") {
		t.Fatalf("unexpected row: %q", lines[1])
	}

	// edit sólo cambia los flags pasados
	if code, _, errOut := run(t, "--file", file, "edit", id, "--age", "5"); code != 0 {
		t.Fatalf("edit failed: %s", errOut)
	}
	_, out, _ = run(t, "--file", file, "list")
	if !strings.Contains(out, "Black") || !strings.Contains(out, "5") || !strings.Contains(out, "Yes") {
		t.Fatalf("edit lost values:\n%s", out)
	}
	if onlyID(t, file) != id {
		t.Fatalf("edit must keep the id")
	}

	// change-id inválido
	code, _, errOut := run(t, "--file", file, "change-id", id, "123")
	if code == 0 || !strings.Contains(errOut, "Invalid ID") {
		t.Fatalf("expected invalid id error, got code=%d err=%q", code, errOut)
	}
	if onlyID(t, file) != id {
		t.Fatalf("id must be unchanged after invalid change")
	}

	// change-id válido
	if code, _, errOut := run(t, "--file", file, "change-id", id, "catcatcat0"); code != 0 {
		t.Fatalf("change-id failed: %s", errOut)
	}
	if got := onlyID(t, file); got != "CATCATCAT0" {
		t.Fatalf("expected CATCATCAT0, got %q", got)
	}

	// regenerate-id
	if code, _, errOut := run(t, "--file", file, "regenerate-id", "CATCATCAT0"); code != 0 {
		t.Fatalf("regenerate-id failed: %s", errOut)
	}
	regenerated := onlyID(t, file)

	// delete
	if code, _, errOut := run(t, "--file", file, "delete", regenerated); code != 0 {
		t.Fatalf("delete failed: %s", errOut)
	}
	_, out, _ = run(t, "--file", file, "list")
	if strings.Count(strings.TrimSpace(out), "\n") != 0 {
		t.Fatalf("expected only header after delete:\n%s", out)
	}
}

func TestCLI_MissingSelection(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cats.json")

	code, _, errOut := run(t, "--file", file, "delete", " ")
	if code == 0 || !strings.Contains(errOut, "Please select a cat first!") {
		t.Fatalf("expected selection warning, got code=%d err=%q", code, errOut)
	}

	code, _, errOut = run(t, "--file", file, "regenerate-id", "CCCCCCCCCC")
	if code == 0 || !strings.Contains(errOut, "not found") {
		t.Fatalf("expected not found, got code=%d err=%q", code, errOut)
	}
}

func TestCLI_Server(t *testing.T) {
	store, err := jsonfile.Open(filepath.Join(t.TempDir(), "cats.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ts := httptest.NewServer(router.NewRouter(router.Options{Store: store}))
	defer ts.Close()

	code, out, errOut := run(t, "--server", ts.URL, "add", "--name", "luna", "--gender", "Female")
	if code != 0 {
		t.Fatalf("remote add failed: %s", errOut)
	}
	if !strings.Contains(out, "Luna") {
		t.Fatalf("unexpected output: %q", out)
	}

	res, err := http.Get(ts.URL + "/activity")
	if err != nil {
		t.Fatalf("get activity: %v", err)
	}
	var entries []struct {
		Type   string `json:"type"`
		Source string `json:"source"`
	}
	err = json.NewDecoder(res.Body).Decode(&entries)
	res.Body.Close()
	if err != nil {
		t.Fatalf("decode activity: %v", err)
	}
	if len(entries) != 1 || entries[0].Type != "CAT_ADDED" || entries[0].Source != "cli" {
		t.Fatalf("expected one CAT_ADDED entry from cli, got %+v", entries)
	}

	items, _ := store.List(context.Background())
	if len(items) != 1 || items[0].Gender != "Female" {
		t.Fatalf("expected cat stored through the api, got %+v", items)
	}
	id := items[0].ID

	if code, _, errOut := run(t, "--server", ts.URL, "edit", id, "--notes", "shy"); code != 0 {
		t.Fatalf("remote edit failed: %s", errOut)
	}
	code, _, errOut = run(t, "--server", ts.URL, "change-id", id, "DOG")
	if code == 0 || !strings.Contains(errOut, "Invalid ID") {
		t.Fatalf("expected invalid id over the api, got code=%d err=%q", code, errOut)
	}

	code, out, _ = run(t, "--server", ts.URL, "list")
	if code != 0 || !strings.Contains(out, "Shy") {
		t.Fatalf("unexpected remote list:\n%s", out)
	}

	code, out, errOut = run(t, "--server", ts.URL, "delete", id)
	if code != 0 || !strings.Contains(out, "(1)") {
		t.Fatalf("remote delete failed: out=%q err=%q", out, errOut)
	}
}
