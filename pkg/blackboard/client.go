package blackboard

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/campustools/coursemap/pkg/coursemap"
)

const (
	tokenPath   = "/learn/api/public/v1/oauth2/token"
	coursesPath = "/learn/api/public/v1/courses"

	// pageLimit is the per-request page size for the contents endpoint.
	pageLimit = "200"

	// contentFields keeps the payload down to what the pipeline reads.
	contentFields = "id,title,parentId,position,webUrl,links,availability,contentHandler,created,modified,body"
)

// Client talks to the Blackboard Learn public REST API for one host. All
// requests carry a bearer token obtained through the OAuth2
// client-credentials grant; the oauth2 transport acquires and refreshes it
// transparently.
type Client struct {
	host       string
	httpClient *http.Client
}

// New returns a client for the given host using the REST application key
// and secret.
func New(ctx context.Context, host, key, secret string, timeout time.Duration) *Client {
	host = strings.TrimRight(host, "/")
	cc := &clientcredentials.Config{
		ClientID:     key,
		ClientSecret: secret,
		TokenURL:     host + tokenPath,
	}
	httpClient := cc.Client(ctx)
	httpClient.Timeout = timeout
	return &Client{host: host, httpClient: httpClient}
}

// NewWithHTTPClient returns a client that sends requests through the given
// HTTP client directly, without the OAuth2 transport.
func NewWithHTTPClient(host string, httpClient *http.Client) *Client {
	return &Client{host: strings.TrimRight(host, "/"), httpClient: httpClient}
}

type contentsPage struct {
	Results []coursemap.ContentRecord `json:"results"`
	Paging  struct {
		NextPage string `json:"nextPage"`
	} `json:"paging"`
}

type courseResponse struct {
	ID       string `json:"id"`
	CourseID string `json:"courseId"`
	Name     string `json:"name"`
}

// FetchContents retrieves the full, flat content listing for one course,
// following pagination until exhausted. Order of the returned records is not
// meaningful; the tree indexer derives ordering from position and title.
func (c *Client) FetchContents(ctx context.Context, courseID string) ([]coursemap.ContentRecord, error) {
	params := url.Values{
		"recursive": {"true"},
		"expand":    {"body,availability,contentHandler"},
		"fields":    {contentFields},
		"limit":     {pageLimit},
	}

	var records []coursemap.ContentRecord
	next := c.contentsURL(courseID)
	for next != "" {
		var page contentsPage
		if err := c.get(ctx, next, params, &page); err != nil {
			return nil, errors.Wrapf(err, "failed to fetch contents for course %s", courseID)
		}
		records = append(records, page.Results...)

		next = c.normalizeNextURL(page.Paging.NextPage)
		// nextPage already carries the query parameters.
		params = nil
	}

	return records, nil
}

// ResolveCoursePK1 resolves a human course id to the API's primary key.
// Ids that already look like a PK1 ("_123_1") pass through; lookup failures
// yield "" rather than an error, since the PK1 is only used for labeling.
func (c *Client) ResolveCoursePK1(ctx context.Context, courseID string) string {
	courseID = strings.TrimSpace(courseID)
	if isPK1(courseID) {
		return courseID
	}

	var course courseResponse
	if err := c.get(ctx, c.host+coursesPath+"/courseId:"+courseID, nil, &course); err != nil {
		return ""
	}
	return course.ID
}

// CourseMeta fetches the course's code and display name.
func (c *Client) CourseMeta(ctx context.Context, pk1 string) (code, name string, err error) {
	params := url.Values{"fields": {"id,courseId,name"}}

	var course courseResponse
	if err := c.get(ctx, c.host+coursesPath+"/"+pk1, params, &course); err != nil {
		return "", "", errors.Wrapf(err, "failed to fetch course meta for %s", pk1)
	}
	return course.CourseID, course.Name, nil
}

// contentsURL builds the contents endpoint for either id form.
func (c *Client) contentsURL(courseID string) string {
	courseID = strings.TrimSpace(courseID)
	if isPK1(courseID) {
		return c.host + coursesPath + "/" + courseID + "/contents"
	}
	return c.host + coursesPath + "/courseId:" + courseID + "/contents"
}

// normalizeNextURL resolves the paging.nextPage value, which the API may
// return absolute, host-relative, or as a bare path.
func (c *Client) normalizeNextURL(next string) string {
	switch {
	case next == "":
		return ""
	case strings.HasPrefix(next, "http://"), strings.HasPrefix(next, "https://"):
		return next
	case strings.HasPrefix(next, "/"):
		return c.host + next
	}
	return c.host + "/" + next
}

// isPK1 reports whether id is already in the API's primary key form, e.g.
// "_123_1".
func isPK1(id string) bool {
	return strings.HasPrefix(id, "_") && strings.Contains(id[1:], "_")
}

func (c *Client) get(ctx context.Context, rawURL string, params url.Values, out interface{}) error {
	if len(params) > 0 {
		sep := "?"
		if strings.Contains(rawURL, "?") {
			sep = "&"
		}
		rawURL += sep + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s failed", rawURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("GET %s failed: HTTP %d: %s", rawURL, resp.StatusCode, string(body))
	}

	return errors.Wrapf(json.Unmarshal(body, out), "failed to parse response from %s", rawURL)
}
