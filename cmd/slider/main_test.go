package main

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/vango-dev/slider/internal/errors"
	"github.com/vango-dev/slider/pkg/publish"
)

type fakePutter struct {
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{ETag: aws.String(`"etag"`)}, nil
}

// writeConfig writes a slider.json into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slider.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, c *cli, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(c)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const baseConfig = `{"slider": {"value": 30, "minimum": 0, "maximum": 100, "step": 1}}`

func TestRenderFromConfig(t *testing.T) {
	path := writeConfig(t, baseConfig)
	out, err := execute(t, newCLI(), "render", "--config", path)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{`class="slider`, `aria-valuenow="30"`, `aria-orientation="horizontal"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, "data-hid") {
		t.Error("hydration IDs should be off by default")
	}
}

func TestRenderFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, baseConfig)
	out, err := execute(t, newCLI(), "render", "--config", path,
		"--orientation", "vertical", "--max", "5", "--value", "2", "--mark-steps", "--hids")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{`aria-orientation="vertical"`, `aria-valuemax="5"`, `aria-valuenow="2"`, "data-hid"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
	if n := strings.Count(out, `class="step-mark `); n != 6 {
		t.Errorf("got %d step marks, want 6", n)
	}
}

func TestRenderPage(t *testing.T) {
	path := writeConfig(t, `{"server": {"title": "Volume"}, "slider": {"value": 10, "maximum": 100, "step": 1}}`)
	out, err := execute(t, newCLI(), "render", "--config", path, "--page")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Errorf("page should start with a doctype:\n%s", out)
	}
	if !strings.Contains(out, "<title>Volume</title>") {
		t.Error("page should carry the configured title")
	}
	if !strings.Contains(out, ".slider.horizontal") {
		t.Error("page should embed the stylesheet")
	}
}

func TestRenderToFile(t *testing.T) {
	path := writeConfig(t, baseConfig)
	target := filepath.Join(t.TempDir(), "out.html")
	out, err := execute(t, newCLI(), "render", "--config", path, "-o", target)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if out != "" {
		t.Errorf("stdout should be empty, got %q", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`aria-valuenow="30"`)) {
		t.Errorf("file content:\n%s", data)
	}
}

func TestRenderInvalidFlags(t *testing.T) {
	path := writeConfig(t, baseConfig)
	tests := [][]string{
		{"--orientation", "diagonal"},
		{"--min", "10", "--max", "5"},
		{"--step", "-1"},
	}
	for _, args := range tests {
		_, err := execute(t, newCLI(), append([]string{"render", "--config", path}, args...)...)
		if !errors.HasCode(err, errors.CodeInvalidFlags) {
			t.Errorf("%v: err = %v, want %s", args, err, errors.CodeInvalidFlags)
		}
	}
}

func TestInvalidConfig(t *testing.T) {
	path := writeConfig(t, `{"slider": {"minimum": 10, "maximum": 5}}`)
	_, err := execute(t, newCLI(), "render", "--config", path)
	if !errors.HasCode(err, errors.CodeConfigInvalid) {
		t.Errorf("err = %v, want %s", err, errors.CodeConfigInvalid)
	}

	_, err = execute(t, newCLI(), "render", "--config", filepath.Join(t.TempDir(), "missing.json"))
	if !errors.HasCode(err, errors.CodeConfigNotFound) {
		t.Errorf("err = %v, want %s", err, errors.CodeConfigNotFound)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, newCLI(), "version", "--log-level", "loud")
	if !errors.HasCode(err, errors.CodeInvalidFlags) {
		t.Errorf("err = %v, want %s", err, errors.CodeInvalidFlags)
	}
}

func TestExport(t *testing.T) {
	path := writeConfig(t, `{"slider": {"value": 42, "maximum": 100, "step": 1}, "export": {"prefix": "widgets"}}`)
	putter := &fakePutter{}
	var gotOpts publish.ClientOptions
	c := newCLI()
	c.newClient = func(o publish.ClientOptions) publish.ObjectPutter {
		gotOpts = o
		return putter
	}

	out, err := execute(t, c, "export", "--config", path,
		"--bucket", "site", "--key", "volume.html", "--region", "eu-west-1", "--cache-control", "no-cache")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if gotOpts.Region != "eu-west-1" {
		t.Errorf("region = %q", gotOpts.Region)
	}
	if len(putter.inputs) != 1 {
		t.Fatalf("got %d uploads, want 1", len(putter.inputs))
	}
	in := putter.inputs[0]
	if *in.Bucket != "site" || *in.Key != "widgets/volume.html" {
		t.Errorf("uploaded to %s/%s", *in.Bucket, *in.Key)
	}
	if *in.CacheControl != "no-cache" {
		t.Errorf("cache control = %q", *in.CacheControl)
	}
	body := string(putter.bodies[0])
	if !strings.HasPrefix(body, "<!DOCTYPE html>") || !strings.Contains(body, `aria-valuenow="42"`) {
		t.Errorf("body:\n%s", body)
	}
	if strings.Contains(body, "<script") {
		t.Error("static export should not include the live client")
	}
	if !strings.Contains(out, "s3://site/widgets/volume.html") {
		t.Errorf("output = %q", out)
	}
}

func TestExportDryRun(t *testing.T) {
	path := writeConfig(t, `{"export": {"bucket": "site"}}`)
	c := newCLI()
	c.newClient = func(publish.ClientOptions) publish.ObjectPutter {
		t.Fatal("dry run should not build a client")
		return nil
	}
	out, err := execute(t, c, "export", "--config", path, "--dry-run")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "s3://site/slider.html") {
		t.Errorf("output = %q", out)
	}
}

func TestExportErrors(t *testing.T) {
	path := writeConfig(t, baseConfig)
	_, err := execute(t, newCLI(), "export", "--config", path)
	if !errors.HasCode(err, errors.CodeExportNoBucket) {
		t.Errorf("no bucket: err = %v, want %s", err, errors.CodeExportNoBucket)
	}

	denied := stderrors.New("access denied")
	c := newCLI()
	c.newClient = func(publish.ClientOptions) publish.ObjectPutter {
		return &fakePutter{err: denied}
	}
	_, err = execute(t, c, "export", "--config", path, "--bucket", "site")
	if !errors.HasCode(err, errors.CodeExportFailed) {
		t.Errorf("upload failure: err = %v, want %s", err, errors.CodeExportFailed)
	}
	if !stderrors.Is(err, denied) {
		t.Error("export error should wrap the upload error")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, newCLI(), "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q, want %q", out, version)
	}

	out, err = execute(t, newCLI(), "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Go version:") {
		t.Errorf("long version output:\n%s", out)
	}
}
