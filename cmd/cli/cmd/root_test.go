package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pcbuild/api"
	"pcbuild/core/types"
	"pcbuild/db"
	"pcbuild/db/memory"
	"pcbuild/internal/config"
	"pcbuild/internal/errors"
)

// writeConfig writes a CLI config into a temp dir. remote may be empty.
func writeConfig(t *testing.T, remote, password string) string {
	t.Helper()
	dir := t.TempDir()
	cfg := map[string]interface{}{
		"catalog": map[string]interface{}{
			"overrides_path": filepath.Join(dir, "overrides.json"),
			"remote_url":     remote,
			"admin_password": password,
		},
		"output": map[string]interface{}{
			"default_format":  "cli",
			"locale":          "en",
			"currency_suffix": "",
		},
		"logging": map[string]interface{}{
			"level":  "error",
			"format": "console",
			"output": "stderr",
		},
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "pcbuild.json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

// resetFlags clears values and Changed marks left by a previous run
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

func execute(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", cfgPath, "--no-color"}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

type reportJSON struct {
	Source      string            `json:"source"`
	TemplateKey string            `json:"templateKey"`
	Selection   map[string]string `json:"selection"`
	Bill        struct {
		Total string `json:"total"`
	} `json:"bill"`
	Missing []string `json:"missing"`
}

func decodeReport(t *testing.T, out string) reportJSON {
	t.Helper()
	var r reportJSON
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	return r
}

func TestVersion(t *testing.T) {
	out, err := execute(t, writeConfig(t, "", ""), "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "pcbuild version "+Version) {
		t.Errorf("output = %q", out)
	}
}

func TestGenerateUsesTemplate(t *testing.T) {
	cfg := writeConfig(t, "", "")
	out, err := execute(t, cfg, "generate", "--budget", "16", "--brand", "Intel", "--game", "Valorant", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	r := decodeReport(t, out)
	if r.Source != "template" || r.TemplateKey != "15M" || r.Selection["cpu"] != "12400f" {
		t.Errorf("report = %+v", r)
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	cfg := writeConfig(t, "", "")
	tests := []struct {
		name string
		args []string
	}{
		{"bad brand", []string{"generate", "--budget", "15", "--brand", "via"}},
		{"zero budget", []string{"generate", "--budget", "0", "--brand", "amd"}},
		{"bad format", []string{"generate", "--budget", "15", "--brand", "amd", "--format", "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, cfg, tt.args...)
			if !errors.IsType(err, errors.TypeInput) {
				t.Errorf("err = %v, want INPUT_ERROR", err)
			}
		})
	}
}

func TestOptionsFilteredBySelection(t *testing.T) {
	cfg := writeConfig(t, "", "")
	out, err := execute(t, cfg, "options", "mainboard", "--set", "cpu=13400f", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var opts struct {
		Filtered bool `json:"filtered"`
		Records  []struct {
			ID string `json:"id"`
		} `json:"records"`
	}
	if err := json.Unmarshal([]byte(out), &opts); err != nil {
		t.Fatal(err)
	}
	ids := map[string]bool{}
	for _, rec := range opts.Records {
		ids[rec.ID] = true
	}
	if !opts.Filtered || !ids["H610M-K"] || ids["B650M"] {
		t.Errorf("options = %+v", opts)
	}

	out, err = execute(t, cfg, "options", "ram")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "choose a mainboard first") {
		t.Errorf("ram should be locked:\n%s", out)
	}
}

func TestTotal(t *testing.T) {
	cfg := writeConfig(t, "", "")
	out, err := execute(t, cfg, "total", "--set", "cpu=12400f", "--set", "mainboard=H610M-K", "--set", "vga=nope", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	r := decodeReport(t, out)
	if r.Bill.Total != "4480000" || len(r.Missing) != 1 || r.Missing[0] != "vga" {
		t.Errorf("report = %+v", r)
	}

	if _, err := execute(t, cfg, "total", "--set", "gpu=x"); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("unknown category err = %v", err)
	}
}

func TestInfer(t *testing.T) {
	out, err := execute(t, writeConfig(t, "", ""), "infer", "Intel Core i5-13400F")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"LGA1700", "DDR4", "intel"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLocalCatalogOverrides(t *testing.T) {
	cfg := writeConfig(t, "", "")

	if _, err := execute(t, cfg, "catalog", "set", "vga", "rtx3060"); !errors.IsType(err, errors.TypeInput) {
		t.Fatalf("empty patch err = %v", err)
	}
	if _, err := execute(t, cfg, "catalog", "set", "vga", "rtx3060", "--price", "1000"); err != nil {
		t.Fatal(err)
	}

	listVGA := func() map[string]types.ComponentRecord {
		out, err := execute(t, cfg, "catalog", "list", "vga", "--format", "json")
		if err != nil {
			t.Fatal(err)
		}
		var got map[string][]types.ComponentRecord
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatal(err)
		}
		byID := map[string]types.ComponentRecord{}
		for _, rec := range got["vga"] {
			byID[rec.ID] = rec
		}
		return byID
	}

	rec := listVGA()["rtx3060"]
	if rec.Price != 1000 || rec.Tier == 0 {
		t.Errorf("override should only replace the price: %+v", rec)
	}

	if _, err := execute(t, cfg, "catalog", "unset", "vga", "rtx3060"); err != nil {
		t.Fatal(err)
	}
	if listVGA()["rtx3060"].Price == 1000 {
		t.Error("override still applied after unset")
	}

	out, err := execute(t, cfg, "catalog", "unset", "vga", "rtx3060")
	if err != nil || !strings.Contains(out, "No override") {
		t.Errorf("second unset = %q, %v", out, err)
	}
}

func TestTemplateMutationsNeedRemote(t *testing.T) {
	cfg := writeConfig(t, "", "")
	_, err := execute(t, cfg, "template", "push", "intel", "valorant", "15M", "--set", "cpu=12400f")
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("err = %v", err)
	}

	out, err := execute(t, cfg, "template", "list", "--brand", "amd")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "intel") || !strings.Contains(out, "valorant") {
		t.Errorf("brand filter not applied:\n%s", out)
	}
}

func TestRemoteCatalogAndTemplates(t *testing.T) {
	store := memory.New()
	if _, err := db.Seed(context.Background(), store); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(api.NewServer("test", store, "pw"))
	defer srv.Close()
	cfg := writeConfig(t, srv.URL, "pw")

	if _, err := execute(t, cfg, "catalog", "set", "psu", "psu-1000", "--name", "Seasonic 1000W", "--price", "4990000", "--wattage", "1000"); err != nil {
		t.Fatal(err)
	}
	inv, _ := store.Inventory(context.Background())
	if rec, ok := inv.Lookup(types.CategoryPSU, "psu-1000"); !ok || rec.Wattage != 1000 {
		t.Errorf("stored = %+v, %v", rec, ok)
	}

	if _, err := execute(t, cfg, "template", "push", "amd", "Apex Legends", "22M", "--set", "cpu=7500f"); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, cfg, "template", "list", "--game", "apex legends", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var tpl types.ConfigTemplate
	if err := json.Unmarshal([]byte(out), &tpl); err != nil {
		t.Fatal(err)
	}
	if got := tpl[types.BrandAMD]["apex legends"]["22M"][types.CategoryCPU]; got != "7500f" {
		t.Errorf("template = %v", tpl)
	}

	if _, err := execute(t, cfg, "template", "delete", "amd", "apex legends", "22M"); err != nil {
		t.Fatal(err)
	}
	stored, _ := store.Templates(context.Background())
	if _, ok := stored.Budgets(types.BrandAMD, "apex legends"); ok {
		t.Error("template not deleted")
	}

	bad := writeConfig(t, srv.URL, "wrong")
	_, err = execute(t, bad, "catalog", "unset", "psu", "psu-1000")
	if !errors.IsType(err, errors.TypePersistence) {
		t.Errorf("wrong password err = %v", err)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pcbuild.json")
	if _, err := execute(t, path, "config", "init"); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Store != "sqlite" || cfg.Output.DefaultFormat != "cli" {
		t.Errorf("written config = %+v", cfg)
	}

	if _, err := execute(t, path, "config", "init"); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("second init err = %v, want INPUT_ERROR", err)
	}
	if _, err := execute(t, path, "config", "init", "--force"); err != nil {
		t.Errorf("forced init: %v", err)
	}
}

func TestWizardInvalidatesDependents(t *testing.T) {
	cfg := writeConfig(t, "", "")
	out, err := execute(t, cfg, "wizard", "--budget", "15", "--brand", "intel", "--game", "valorant", "--choose", "cpu=13400f", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	r := decodeReport(t, out)
	if r.Selection["cpu"] != "13400f" {
		t.Errorf("cpu = %q", r.Selection["cpu"])
	}
	for _, cleared := range []string{"mainboard", "ram"} {
		if id, ok := r.Selection[cleared]; ok {
			t.Errorf("%s should be cleared, got %q", cleared, id)
		}
	}
	if r.Selection["cpuCooler"] != "stock" || r.Selection["vga"] != "rtx3060" {
		t.Errorf("unrelated parts changed: %v", r.Selection)
	}

	if _, err := execute(t, cfg, "wizard", "--budget", "15", "--brand", "intel"); err == nil {
		t.Error("missing game should fail")
	}
}
