package detect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/sokinpui/imgcheck/model"
)

// DefaultPorts are probed in order; 7086 is the port Open WebUI's compose
// setup maps, 7860 is the Automatic1111 default.
var DefaultPorts = []int{7086, 7860}

const (
	optionsPath = "/sdapi/v1/options"
	modelsPath  = "/sdapi/v1/sd-models"
)

// Prober looks for a running Automatic1111 web UI with its API enabled.
type Prober struct {
	Client *http.Client
	Host   string
	Ports  []int
	Out    io.Writer
}

// New creates a Prober for localhost with a 5 second request timeout.
func New(out io.Writer) *Prober {
	return &Prober{
		Client: &http.Client{Timeout: 5 * time.Second},
		Host:   "localhost",
		Ports:  DefaultPorts,
		Out:    out,
	}
}

type sdModel struct {
	Title string `json:"title"`
}

// Probe tries each port in turn and stops at the first that answers 200.
func (p *Prober) Probe(ctx context.Context) model.Detection {
	p.printf("🔍 Testing Automatic1111 detection...\n")
	p.printf("%s\n", strings.Repeat("=", 40))

	for _, port := range p.Ports {
		base := fmt.Sprintf("http://%s:%d", p.Host, port)
		url := base + optionsPath
		p.printf("Testing %s...\n", url)

		status, err := p.get(ctx, url, nil)
		switch {
		case err != nil:
			p.printf("❌ %s\n", describe(err, url))
		case status == http.StatusOK:
			p.printf("✅ Automatic1111 detected at %s\n", base)
			p.printf("   Status: %d\n", status)
			p.printModels(ctx, base)
			return model.Detection{URL: base, Found: true}
		default:
			p.printf("❌ HTTP %d at %s\n", status, url)
		}
	}

	p.printf("\n❌ No Automatic1111 instance detected\n")
	p.printf("\nTo start Automatic1111:\n")
	p.printf("1. Install Automatic1111: https://github.com/AUTOMATIC1111/stable-diffusion-webui\n")
	p.printf("2. Run with API enabled: python webui.py --api --listen --port 7086\n")
	p.printf("3. Or use Docker: docker run -d -p 7086:7860 ghcr.io/neggles/sd-webui-docker:latest\n")
	return model.Detection{}
}

// Summarize prints the closing verdict and returns the process exit code.
func (p *Prober) Summarize(d model.Detection) int {
	if d.Found {
		p.printf("\n🎉 Automatic1111 is ready at: %s\n", d.URL)
		p.printf("Open WebUI will automatically detect and configure it!\n")
		return 0
	}
	p.printf("\n💡 Automatic1111 not found. Please start it first.\n")
	return 1
}

// printModels is best effort; a non-200 answer is silently ignored.
func (p *Prober) printModels(ctx context.Context, base string) {
	var models []sdModel
	status, err := p.get(ctx, base+modelsPath, &models)
	if err != nil {
		p.printf("   Could not fetch models: %v\n", err)
		return
	}
	if status != http.StatusOK {
		return
	}
	p.printf("   Available models: %d\n", len(models))
	if len(models) > 0 {
		title := models[0].Title
		if title == "" {
			title = "Unknown"
		}
		p.printf("   Current model: %s\n", title)
	}
}

// get issues a GET and, on 200, decodes the JSON body into out when non-nil.
func (p *Prober) get(ctx context.Context, url string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("invalid response from %s: %w", url, err)
		}
	}
	return resp.StatusCode, nil
}

func describe(err error, url string) string {
	var netErr net.Error
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return "Connection refused at " + url
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return "Timeout at " + url
	default:
		return fmt.Sprintf("Error at %s: %v", url, err)
	}
}

func (p *Prober) printf(format string, a ...interface{}) {
	fmt.Fprintf(p.Out, format, a...)
}
