package client

import (
	"net"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/concave-dev/tabula/internal/api"
	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/table"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serverShow = `+-----------+--------------------------------------+
| Field     | Value                                |
+-----------+--------------------------------------+
| id        | 9a1b2c3d-0000-4000-8000-000000000001 |
| name      | web-1                                |
| status    | ACTIVE                               |
+-----------+--------------------------------------+
`

const serverList = `+----+-------+--------+
| ID | Name  | Status |
+----+-------+--------+
| 1  | web-1 | ACTIVE |
| 2  | web-2 | BUILD  |
+----+-------+--------+
`

// newTestClient serves a real tabulad handler and returns a client for it.
func newTestClient(t *testing.T) *TabulaAPIClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logging.SetOutput(nil)
	t.Cleanup(logging.RestoreOutput)

	srv := httptest.NewServer(api.NewServer(api.DefaultConfig()).Handler())
	t.Cleanup(srv.Close)

	return NewTabulaAPIClient(strings.TrimPrefix(srv.URL, "http://"), 5)
}

func TestGetHealth(t *testing.T) {
	c := newTestClient(t)

	health, err := c.GetHealth()
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Contains(t, health.Modes, "show")
}

func TestParse_Show(t *testing.T) {
	c := newTestClient(t)

	p, err := c.Parse(serverShow, table.ModeShow)
	require.NoError(t, err)
	require.NotNil(t, p.Object)
	assert.Equal(t, "web-1", p.Object.Value("name"))
	assert.Equal(t, []string{"id", "name", "status"}, p.Object.Keys())
}

func TestParse_ListAndTable(t *testing.T) {
	c := newTestClient(t)

	p, err := c.Parse(serverList, table.ModeList)
	require.NoError(t, err)
	require.Len(t, p.Records, 2)
	assert.Equal(t, "BUILD", p.Records[1].Value("Status"))

	p, err = c.Parse(serverList, table.ModeTable)
	require.NoError(t, err)
	require.NotNil(t, p.Table)
	assert.Equal(t, []string{"ID", "Name", "Status"}, p.Table.Headers)
	assert.Equal(t, table.Parse(serverList), *p.Table)
}

func TestParse_Raw(t *testing.T) {
	c := newTestClient(t)

	p, err := c.Parse("plain text", table.ModeRaw)
	require.NoError(t, err)
	assert.Equal(t, "plain text", p.Raw)
}

func TestParse_InvalidModeCarriesDetails(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Parse(serverList, table.Mode("grid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "Invalid parse mode")
}

func TestRender(t *testing.T) {
	c := newTestClient(t)

	out, err := c.RenderRecords(table.ModeList, table.ParseListing(serverList))
	require.NoError(t, err)
	assert.Equal(t, table.ParseListing(serverList), table.ParseListing(out))

	out, err = c.RenderTable(table.Parse(serverShow))
	require.NoError(t, err)
	assert.Equal(t, table.ParseShowObject(serverShow), table.ParseShowObject(out))
}

func TestConnectionFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	l.Close()

	c := NewTabulaAPIClient(addr, 1)
	c.client.SetRetryCount(0)

	_, err = c.GetHealth()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to API server")
}
