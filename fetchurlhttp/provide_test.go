package fetchurlhttp

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/fetchurl"
	"github.com/xmidt-org/fetchurl/fetchurltest"
	"go.uber.org/fx"
)

const testClientConfig = `
client:
  timeout: 15s
  baseURL: http://api.example.com/v1
  location: http://localhost:3000/index.html
  header:
    X-Default: "true"
  params:
    apiKey: secret
    ids: [1, 2]
  xsrfCookieName: csrftoken
  transport:
    maxIdleConns: 7
    idleConnTimeout: 1m
`

type ProvideSuite struct {
	suite.Suite
}

func (suite *ProvideSuite) SetupTest() {
	fetchurltest.NoLocation(suite)
}

func (suite *ProvideSuite) newIn(config string) ClientIn {
	return ClientIn{
		Viper:   fetchurltest.NewViper(suite, "yaml", config),
		Printer: fetchurl.TestPrinter(suite.T()),
	}
}

func (suite *ProvideSuite) TestProvideClient() {
	var (
		cc     ClientConfig
		client *http.Client
		v      = fetchurltest.NewViper(suite, "yaml", testClientConfig)
	)

	app := fetchurltest.NewApp(
		suite,
		fetchurl.Logger(fetchurl.TestPrinter(suite.T())),
		fetchurl.ForViper(v),
		ProvideClient("client"),
		fx.Populate(&cc, &client),
	)

	app.RequireStart()
	defer app.RequireStop()

	suite.Require().NotNil(client)
	suite.Equal(15*time.Second, client.Timeout)
	suite.Equal(15*time.Second, cc.Timeout)
	suite.Equal("http://api.example.com/v1", cc.BaseURL)
	suite.Equal("http://localhost:3000/index.html", cc.Location)
	suite.Equal("csrftoken", cc.XSRFCookieName)
	suite.Equal(7, cc.Transport.MaxIdleConns)
	suite.Equal(time.Minute, cc.Transport.IdleConnTimeout)
	suite.Len(cc.Header, 1)
	suite.Equal("true", NewHeaderFromMap(cc.Header).h.Get("X-Default"))

	// viper lowercases keys
	suite.Equal("apikey=secret&ids[]=1&ids[]=2", fetchurl.Serialize(cc.Params, nil))

	page := fetchurl.CurrentPage()
	suite.Require().NotNil(page)
	suite.Equal(fetchurl.Origin{Protocol: "http:", Host: "localhost:3000"}, page.Origin())

	request, err := cc.NewRequest(context.Background(), Request{URL: "users", Params: fetchurl.NewParams("id", 5)})
	suite.Require().NoError(err)
	suite.Equal("http://api.example.com/v1/users?apikey=secret&ids[]=1&ids[]=2&id=5", request.URL.String())
}

func (suite *ProvideSuite) TestProvideClientWithCookies() {
	server := httptest.NewServer(
		http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			response.Header().Set("Echo-Xsrf", request.Header.Get(DefaultXSRFHeaderName))
			response.WriteHeader(299)
		}),
	)

	defer server.Close()

	var (
		client *http.Client
		v      = fetchurltest.NewViper(suite, "yaml", fmt.Sprintf("client:\n  location: %s/\n", server.URL))
	)

	app := fetchurltest.NewApp(
		suite,
		fx.Supply(v),
		fx.Provide(
			func() CookieReader {
				return CookieString("XSRF-TOKEN=abc")
			},
		),
		ProvideClient("client"),
		fx.Populate(&client),
	)

	app.RequireStart()
	defer app.RequireStop()

	response, err := client.Get(server.URL + "/api")
	suite.Require().NoError(err)
	response.Body.Close()
	suite.Equal(299, response.StatusCode)
	suite.Equal("abc", response.Header.Get("Echo-Xsrf"))
}

func (suite *ProvideSuite) TestProvideClientDecodeOptions() {
	v := fetchurltest.NewViper(suite, "yaml", "client:\n  timeout: 5s\n  unknown: true\n")
	fetchurltest.NewErrApp(
		suite,
		fetchurl.ForViper(v, func(dc *mapstructure.DecoderConfig) {
			dc.ErrorUnused = true
		}),
		ProvideClient("client"),
		fx.Invoke(func(*http.Client) {}),
	)
}

func (suite *ProvideSuite) TestProvideClientInvalidLocation() {
	v := fetchurltest.NewViper(suite, "yaml", "client:\n  location: /relative\n")
	fetchurltest.NewErrApp(
		suite,
		fx.Supply(v),
		ProvideClient("client"),
		fx.Invoke(func(*http.Client) {}),
	)

	suite.Nil(fetchurl.CurrentPage())
}

func (suite *ProvideSuite) TestProvideClientNoViper() {
	fetchurltest.NewErrApp(
		suite,
		ProvideClient("client"),
		fx.Invoke(func(*http.Client) {}),
	)
}

func (suite *ProvideSuite) TestNewClientFromViper() {
	suite.Run("NilViper", func() {
		out, err := NewClientFromViper("client", ClientIn{})
		suite.ErrorIs(err, fetchurl.ErrNilViper)
		suite.Nil(out.Client)
	})

	suite.Run("BadDuration", func() {
		out, err := NewClientFromViper("client", suite.newIn("client:\n  timeout: notaduration\n"))
		suite.Error(err)
		suite.Nil(out.Client)
	})

	suite.Run("NoLocation", func() {
		out, err := NewClientFromViper("client", suite.newIn("client:\n  baseURL: http://api.example.com\n"))
		suite.Require().NoError(err)
		suite.NotNil(out.Client)
		suite.Nil(fetchurl.CurrentPage())
	})

	suite.Run("SharedLocation", func() {
		fetchurltest.NoLocation(suite)

		in := suite.newIn("client:\n  location: http://localhost:3000/\n")
		first, err := NewClientFromViper("client", in)
		suite.Require().NoError(err)
		suite.NotNil(first.Client)

		second, err := NewClientFromViper("client", in)
		suite.Require().NoError(err)
		suite.NotNil(second.Client)
		suite.NotSame(first.Client, second.Client)

		other, err := NewClientFromViper("client", suite.newIn("client:\n  location: http://localhost:4000/\n"))
		suite.ErrorIs(err, fetchurl.ErrLocationInitialized)
		suite.Nil(other.Client)
		suite.Equal("http://localhost:3000/", fetchurl.CurrentPage().Location())
	})
}

func TestProvide(t *testing.T) {
	suite.Run(t, new(ProvideSuite))
}
