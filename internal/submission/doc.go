// Package submission posts Careers applications to the hosted form relay.
//
// The relay accepts a JSON body and answers {"success": bool, "message":
// string}. Every failure is returned as a *SubmitError whose Type tells the
// caller what went wrong:
//
//	client := submission.NewClient(settings.Submission.AccessKey)
//	client.SetTimeout(settings.Submission.Timeout())
//
//	if err := client.Submit(ctx, session.Values()); err != nil {
//	    fmt.Println(submission.AlertMessage(err))
//	    if submission.IsRetryable(err) {
//	        ...
//	    }
//	}
//
// # Error Categories
//
//   - Timeout, ConnectionRefused, DNS, Network: the relay was not reached
//   - HTTP: non-2xx status
//   - Parse: 2xx status with a body that is not JSON
//   - Rejected: the relay answered success=false
//   - Config: no access key or an unusable endpoint; no request is sent
//
// AlertMessage collapses these to the two texts the applicant sees.
//
// Each attempt is logged with a fresh UUID so request, response and outcome
// lines can be correlated. Client never retries on its own.
package submission
