package httpclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/installkit/netinstall/pkg/httpclient"
)

func TestHTTPClient(t *testing.T) {
	t.Parallel()
	RegisterFailHandler(Fail)
	RunSpecs(t, "HTTPClient Suite")
}

var _ = Describe("DefaultClient", func() {
	var (
		client     httpclient.Client
		mockServer *httptest.Server
		ctx        context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
	})

	AfterEach(func() {
		if mockServer != nil {
			mockServer.Close()
		}
	})

	Describe("NewDefaultClient", func() {
		It("should create client with custom timeout", func() {
			client = httpclient.NewDefaultClient(5 * time.Second)
			Expect(client).NotTo(BeNil())
		})

		It("should use default timeout when zero is provided", func() {
			client = httpclient.NewDefaultClient(0)
			Expect(client).NotTo(BeNil())
		})
	})

	Describe("Get", func() {
		Context("Successful requests", func() {
			BeforeEach(func() {
				mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					// The fetcher hides behind a browser user agent.
					Expect(r.Header.Get("User-Agent")).To(Equal(httpclient.UserAgent))

					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte("groups:\n  - name: base\n"))
				}))
				client = httpclient.NewDefaultClient(0)
			})

			It("should fetch the document body", func() {
				data, err := client.Get(ctx, mockServer.URL)
				Expect(err).NotTo(HaveOccurred())
				Expect(data).To(Equal([]byte("groups:\n  - name: base\n")))
			})
		})

		Context("Redirects", func() {
			It("should follow a redirect to the document", func() {
				mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					if r.URL.Path == "/moved" {
						http.Redirect(w, r, "/final", http.StatusFound)
						return
					}
					_, _ = w.Write([]byte("- name: A\n"))
				}))
				client = httpclient.NewDefaultClient(0)

				data, err := client.Get(ctx, mockServer.URL+"/moved")
				Expect(err).NotTo(HaveOccurred())
				Expect(data).To(Equal([]byte("- name: A\n")))
			})
		})

		Context("HTTP error responses", func() {
			BeforeEach(func() {
				client = httpclient.NewDefaultClient(0)
			})

			It("should surface a 404 as an HTTPError", func() {
				mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusNotFound)
				}))

				_, err := client.Get(ctx, mockServer.URL)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("HTTP 404"))

				httpErr, ok := err.(*httpclient.HTTPError)
				Expect(ok).To(BeTrue())
				Expect(httpErr.StatusCode).To(Equal(http.StatusNotFound))
			})

			It("should surface a 500 as an HTTPError", func() {
				mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				}))

				_, err := client.Get(ctx, mockServer.URL)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("HTTP 500"))
			})
		})

		Context("Transport failures", func() {
			It("should fail when the server is unreachable", func() {
				client = httpclient.NewDefaultClient(0)
				_, err := client.Get(ctx, "http://127.0.0.1:1/unreachable")
				Expect(err).To(HaveOccurred())
			})

			It("should time out on a stalled response", func() {
				mockServer = httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					<-r.Context().Done()
				}))
				client = httpclient.NewDefaultClient(100 * time.Millisecond)

				_, err := client.Get(ctx, mockServer.URL)
				Expect(err).To(HaveOccurred())
			})

			It("should honor context cancellation", func() {
				mockServer = httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					<-r.Context().Done()
				}))
				client = httpclient.NewDefaultClient(0)

				cancelCtx, cancel := context.WithCancel(ctx)
				go func() {
					time.Sleep(50 * time.Millisecond)
					cancel()
				}()

				_, err := client.Get(cancelCtx, mockServer.URL)
				Expect(err).To(HaveOccurred())
			})
		})

		Context("Oversized responses", func() {
			It("should reject a body larger than the cap", func() {
				mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					// Chunked response, so no Content-Length header to
					// reject early; the read path has to catch it.
					_, _ = w.Write([]byte(strings.Repeat("x", httpclient.MaxResponseSize+1)))
				}))
				client = httpclient.NewDefaultClient(0)

				_, err := client.Get(ctx, mockServer.URL)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("exceeds maximum allowed size"))
			})
		})

		Context("Invalid URLs", func() {
			It("should fail to build a request from a malformed URL", func() {
				client = httpclient.NewDefaultClient(0)
				_, err := client.Get(ctx, "http://[::1]:namedport")
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
