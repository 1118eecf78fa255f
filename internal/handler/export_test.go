package handler

// Export for testing
type DomainStatusResponse = domainStatusResponse
type DomainListResponse = domainListResponse
type RemoveDomainResponse = removeDomainResponse
type QuotaListResponse = quotaListResponse
type TXTChallengeResponse = txtChallengeResponse
type TXTVerifyResponse = txtVerifyResponse
type JobSummaryResponse = jobSummaryResponse
type ValidationErrorResponse = validationErrorResponse
type RateLimitErrorResponse = rateLimitErrorResponse

var WriteServiceError = writeServiceError
var FormatTimePtr = formatTimePtr
