// Package integration provides BDD integration tests using Godog/Cucumber.
// Each scenario runs against a fresh in-process HTTP server backed by a
// temporary data directory.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"
	"github.com/gin-gonic/gin"

	"github.com/finbook/backend/config"
	"github.com/finbook/backend/internal/infra/dependency"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// TestFeatures runs all BDD feature tests.
func TestFeatures(t *testing.T) {
	os.Setenv("ENV", "test")
	gin.SetMode(gin.TestMode)

	opts := godog.Options{
		Format:      "pretty",
		Paths:       []string{"features"},
		Output:      colors.Colored(os.Stdout),
		Concurrency: 1,
		Strict:      true,
		TestingT:    t,
	}
	if tags := os.Getenv("GODOG_TAGS"); tags != "" {
		opts.Tags = tags
	}

	suite := godog.TestSuite{
		Name:                "finbook-api",
		ScenarioInitializer: InitializeScenario,
		Options:             &opts,
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

// testContext holds the per-scenario state.
type testContext struct {
	server  *httptest.Server
	client  *http.Client
	dataDir string

	token          string
	responseStatus int
	responseBody   []byte
	stored         map[string]string
}

// InitializeScenario registers hooks and step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		dataDir, err := os.MkdirTemp("", "finbook-test-*")
		if err != nil {
			return ctx, err
		}
		test.dataDir = dataDir

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Storage.DataDir = dataDir
		cfg.JWT.Secret = testJWTSecret
		cfg.JWT.Expiry = time.Hour

		injector := dependency.NewInjector(cfg)
		test.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
		test.client = &http.Client{Timeout: 10 * time.Second}
		test.token = ""
		test.responseStatus = 0
		test.responseBody = nil
		test.stored = make(map[string]string)

		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
		}
		if test.dataDir != "" {
			_ = os.RemoveAll(test.dataDir)
		}
		return ctx, nil
	})

	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^a user exists with username "([^"]*)" and password "([^"]*)"$`, test.aUserExists)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Step(`^I am not authenticated$`, test.iAmNotAuthenticated)

	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	ctx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, test.iStoreTheResponseFieldAs)

	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, test.theResponseShouldNotContain)
	ctx.Step(`^the response body should be:$`, test.theResponseBodyShouldBe)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.server.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) aUserExists(username, password string) error {
	body := fmt.Sprintf(`{"name":%q,"username":%q,"password":%q}`, username, username, password)
	if err := t.doRequest(http.MethodPost, "/api/v1/auth/register", []byte(body)); err != nil {
		return err
	}
	if t.responseStatus != http.StatusCreated {
		return fmt.Errorf("registration returned status %d: %s", t.responseStatus, t.responseBody)
	}
	return nil
}

func (t *testContext) iAmLoggedInAs(username, password string) error {
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	if err := t.doRequest(http.MethodPost, "/api/v1/auth/login", []byte(body)); err != nil {
		return err
	}
	if t.responseStatus != http.StatusOK {
		return fmt.Errorf("login returned status %d: %s", t.responseStatus, t.responseBody)
	}
	var parsed struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(t.responseBody, &parsed); err != nil {
		return err
	}
	if parsed.Token == "" {
		return fmt.Errorf("login response carried no token")
	}
	t.token = parsed.Token
	return nil
}

func (t *testContext) iAmNotAuthenticated() error {
	t.token = ""
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.doRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.doRequest(method, path, []byte(body.Content))
}

// iStoreTheResponseFieldAs saves a response field so later requests can
// reference it as {{name}}.
func (t *testContext) iStoreTheResponseFieldAs(path, name string) error {
	value, err := t.lookupField(path)
	if err != nil {
		return err
	}
	t.stored[name] = fmt.Sprintf("%v", value)
	return nil
}

// substitute replaces {{name}} placeholders with stored values.
func (t *testContext) substitute(input string) string {
	for name, value := range t.stored {
		input = strings.ReplaceAll(input, "{{"+name+"}}", value)
	}
	return input
}

func (t *testContext) doRequest(method, path string, body []byte) error {
	path = t.substitute(path)
	if body != nil {
		body = []byte(t.substitute(string(body)))
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, t.server.URL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	t.responseStatus = resp.StatusCode
	t.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.responseStatus != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, t.responseStatus, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(path, expected string) error {
	value, err := t.lookupField(path)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(path string) error {
	_, err := t.lookupField(path)
	return err
}

func (t *testContext) theResponseShouldContain(substring string) error {
	if !strings.Contains(string(t.responseBody), substring) {
		return fmt.Errorf("response %s does not contain %q", t.responseBody, substring)
	}
	return nil
}

func (t *testContext) theResponseShouldNotContain(substring string) error {
	if strings.Contains(string(t.responseBody), substring) {
		return fmt.Errorf("response %s contains %q", t.responseBody, substring)
	}
	return nil
}

func (t *testContext) theResponseBodyShouldBe(expected *godog.DocString) error {
	if string(t.responseBody) != expected.Content {
		return fmt.Errorf("expected body:\n%s\ngot:\n%s", expected.Content, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(path string, count int) error {
	value, err := t.lookupField(path)
	if err != nil {
		return err
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list", path)
	}
	if len(list) != count {
		return fmt.Errorf("expected %d items in %q, got %d", count, path, len(list))
	}
	return nil
}

// lookupField resolves a dot-separated path into the JSON response body.
// Numeric segments index into arrays.
func (t *testContext) lookupField(path string) (any, error) {
	var parsed any
	if err := json.Unmarshal(t.responseBody, &parsed); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}

	current := parsed
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, exists := node[segment]
			if !exists {
				return nil, fmt.Errorf("field %q not found in response %s", path, t.responseBody)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid list index %q in path %q", segment, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at segment %q", path, segment)
		}
	}
	return current, nil
}
