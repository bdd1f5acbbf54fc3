package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// CertificatesClient implements rtr.CertificatesClient.
type CertificatesClient struct {
	httpClient *http.Client
	customer   string
	logger     http.Logger
}

// NewCertificatesClient creates a new certificates client. Requests and
// imports are booked on customer unless the request names one. logger may
// be nil.
func NewCertificatesClient(httpClient *http.Client, customer string, logger http.Logger) *CertificatesClient {
	return &CertificatesClient{
		httpClient: httpClient,
		customer:   customer,
		logger:     logger,
	}
}

func certificatePath(id int, elements ...string) string {
	path := "/ssl/certificates/" + strconv.Itoa(id)
	for _, element := range elements {
		path += "/" + element
	}

	return path
}

func (c *CertificatesClient) certificateProcess(ctx context.Context, path string, body any, action string) (*rtr.CertificateProcessResponse, error) {
	process, err := postProcess(ctx, c.httpClient, path, body, action)
	if err != nil {
		return nil, err
	}

	result := &rtr.CertificateProcessResponse{ProcessResponse: *process}

	err = decodeResult(process, &result.Result, action)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *CertificatesClient) requestBody(request *rtr.CertificateRequest) *rtr.CertificateRequest {
	body := *request
	if body.Customer == "" {
		body.Customer = c.customer
	}

	return &body
}

// Get implements rtr.CertificatesClient.Get.
func (c *CertificatesClient) Get(ctx context.Context, id int, opts *rtr.GetOptions) (*rtr.Certificate, error) {
	return getResource[rtr.Certificate](ctx, c.httpClient, certificatePath(id), opts, "certificate")
}

// List implements rtr.CertificatesClient.List.
func (c *CertificatesClient) List(ctx context.Context, query *rtr.ListQuery) (*rtr.Page[rtr.Certificate], error) {
	return listResources[rtr.Certificate](ctx, c.httpClient, "/ssl/certificates/", query, "certificates")
}

// Request implements rtr.CertificatesClient.Request.
func (c *CertificatesClient) Request(ctx context.Context, request *rtr.CertificateRequest) (*rtr.CertificateProcessResponse, error) {
	return c.certificateProcess(ctx, "/ssl/certificates/", c.requestBody(request), "requesting certificate")
}

// RequestQuote implements rtr.CertificatesClient.RequestQuote.
func (c *CertificatesClient) RequestQuote(ctx context.Context, request *rtr.CertificateRequest) (*rtr.Quote, error) {
	return postQuote(ctx, c.httpClient, "/ssl/certificates/", c.requestBody(request), "quoting certificate request")
}

// Reissue implements rtr.CertificatesClient.Reissue.
func (c *CertificatesClient) Reissue(ctx context.Context, id int, request *rtr.CertificateReissueRequest) (*rtr.CertificateProcessResponse, error) {
	return c.certificateProcess(ctx, certificatePath(id, "reissue", ""), request, "reissuing certificate")
}

// Renew implements rtr.CertificatesClient.Renew.
func (c *CertificatesClient) Renew(ctx context.Context, id int, request *rtr.CertificateRenewRequest) (*rtr.CertificateProcessResponse, error) {
	return c.certificateProcess(ctx, certificatePath(id, "renew", ""), request, "renewing certificate")
}

// RenewQuote implements rtr.CertificatesClient.RenewQuote.
func (c *CertificatesClient) RenewQuote(ctx context.Context, id int, request *rtr.CertificateRenewRequest) (*rtr.Quote, error) {
	return postQuote(ctx, c.httpClient, certificatePath(id, "renew", ""), request, "quoting certificate renewal")
}

// Import implements rtr.CertificatesClient.Import.
func (c *CertificatesClient) Import(ctx context.Context, request *rtr.CertificateImportRequest) (*rtr.ProcessResponse, error) {
	body := *request
	if body.Customer == "" {
		body.Customer = c.customer
	}

	return postProcess(ctx, c.httpClient, "/ssl/import/", &body, "importing certificate")
}

// Download implements rtr.CertificatesClient.Download.
func (c *CertificatesClient) Download(ctx context.Context, id int, opts *rtr.DownloadOptions) ([]byte, error) {
	query, err := rtr.OptionValues(opts)
	if err != nil {
		return nil, fmt.Errorf("downloading certificate: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, certificatePath(id, "download"), query)
	if err != nil {
		return nil, fmt.Errorf("downloading certificate: %w", err)
	}

	return resp.Body, nil
}

// Revoke implements rtr.CertificatesClient.Revoke.
func (c *CertificatesClient) Revoke(ctx context.Context, id int, request *rtr.CertificateRevokeRequest) (*rtr.ProcessResponse, error) {
	if request == nil {
		request = &rtr.CertificateRevokeRequest{}
	}

	resp, err := c.httpClient.DeleteWithBody(ctx, certificatePath(id), request)
	if err != nil {
		return nil, fmt.Errorf("revoking certificate: %w", err)
	}

	return processResponse(resp)
}

// ResendDCV implements rtr.CertificatesClient.ResendDCV.
func (c *CertificatesClient) ResendDCV(ctx context.Context, processID int, request *rtr.DCVResendRequest) error {
	return postNoContent(ctx, c.httpClient, processPath(processID, "resend"), request, "resending validation")
}

// DecodeCSR implements rtr.CertificatesClient.DecodeCSR.
func (c *CertificatesClient) DecodeCSR(ctx context.Context, csr string) (*rtr.CSRInfo, error) {
	resp, err := c.httpClient.Post(ctx, "/ssl/decodecsr", &rtr.CSRDecodeRequest{CSR: csr})
	if err != nil {
		return nil, fmt.Errorf("decoding CSR: %w", err)
	}

	var info rtr.CSRInfo

	err = json.Unmarshal(resp.Body, &info)
	if err != nil {
		return nil, fmt.Errorf("parsing CSR response: %w", err)
	}

	return &info, nil
}

// DCVEmailAddressList implements rtr.CertificatesClient.DCVEmailAddressList.
func (c *CertificatesClient) DCVEmailAddressList(ctx context.Context, domainName string, opts *rtr.DCVEmailAddressOptions) ([]string, error) {
	query, err := rtr.OptionValues(opts)
	if err != nil {
		return nil, fmt.Errorf("listing DCV email addresses: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, "/ssl/dcvemailaddresslist/"+segment(domainName), query)
	if err != nil {
		return nil, fmt.Errorf("listing DCV email addresses: %w", err)
	}

	var addresses []string

	err = json.Unmarshal(resp.Body, &addresses)
	if err != nil {
		return nil, fmt.Errorf("parsing DCV email address response: %w", err)
	}

	return addresses, nil
}

// AddNote implements rtr.CertificatesClient.AddNote.
//
// Deprecated: the certificate authority no longer accepts notes.
func (c *CertificatesClient) AddNote(ctx context.Context, processID int, request *rtr.ProcessNoteRequest) error {
	if c.logger != nil {
		c.logger.Warn("adding notes to certificate processes is deprecated", map[string]interface{}{
			"process": processID,
		})
	}

	return postNoContent(ctx, c.httpClient, processPath(processID, "add-note"), request, "adding process note")
}

// ScheduleValidationCall implements rtr.CertificatesClient.ScheduleValidationCall.
func (c *CertificatesClient) ScheduleValidationCall(ctx context.Context, processID int, request *rtr.ValidationCallRequest) error {
	return postNoContent(ctx, c.httpClient, processPath(processID, "schedule-validation-call"), request, "scheduling validation call")
}

// SendSubscriberAgreement implements rtr.CertificatesClient.SendSubscriberAgreement.
func (c *CertificatesClient) SendSubscriberAgreement(ctx context.Context, processID int, request *rtr.SubscriberAgreementRequest) error {
	return postNoContent(ctx, c.httpClient, processPath(processID, "send-subscriber-agreement"), request, "sending subscriber agreement")
}
