package bridge

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// An ErrorCode is the numeric code carried by every error surfaced
// to callers. Callers are expected to branch on it.
type ErrorCode int

// Codes reported by the store frameworks.
const (
	CodeUnknown                             ErrorCode = 0
	CodeClientInvalid                       ErrorCode = 1
	CodePaymentInvalid                      ErrorCode = 3
	CodePaymentNotAllowed                   ErrorCode = 4
	CodeStoreProductNotAvailable            ErrorCode = 5
	CodeCloudServicePermissionDenied        ErrorCode = 6
	CodeCloudServiceNetworkConnectionFailed ErrorCode = 7
	CodeCloudServiceRevoked                 ErrorCode = 8
	CodePrivacyAcknowledgementRequired      ErrorCode = 9
	CodeUnauthorizedRequestData             ErrorCode = 10
	CodeInvalidOfferIdentifier              ErrorCode = 11
	CodeInvalidSignature                    ErrorCode = 12
	CodeMissingOfferParams                  ErrorCode = 13
	CodeInvalidOfferPrice                   ErrorCode = 14
)

// Codes reported by the billing library.
const (
	CodeAdaptyNotInitialized                         ErrorCode = 20
	CodeProductNotFound                              ErrorCode = 22
	CodeCurrentSubscriptionToUpdateNotFoundInHistory ErrorCode = 24
	CodeBillingServiceTimeout                        ErrorCode = 97
	CodeFeatureNotSupported                          ErrorCode = 98
	CodeBillingServiceDisconnected                   ErrorCode = 99
	CodeBillingServiceUnavailable                    ErrorCode = 102
	CodeBillingUnavailable                           ErrorCode = 103
	CodeDeveloperError                               ErrorCode = 105
	CodeBillingError                                 ErrorCode = 106
	CodeItemAlreadyOwned                             ErrorCode = 107
	CodeItemNotOwned                                 ErrorCode = 108
	CodeBillingNetworkError                          ErrorCode = 112
)

// Codes reported by the native SDK and by this package.
const (
	CodeNoProductIDsFound                 ErrorCode = 1000
	CodeProductRequestFailed              ErrorCode = 1002
	CodeCantMakePayments                  ErrorCode = 1003
	CodeNoPurchasesToRestore              ErrorCode = 1004
	CodeCantReadReceipt                   ErrorCode = 1005
	CodeProductPurchaseFailed             ErrorCode = 1006
	CodeRefreshReceiptFailed              ErrorCode = 1010
	CodeReceiveRestoredTransactionsFailed ErrorCode = 1011
	CodeNotActivated                      ErrorCode = 2002
	CodeBadRequest                        ErrorCode = 2003
	CodeServerError                       ErrorCode = 2004
	CodeNetworkFailed                     ErrorCode = 2005
	CodeDecodingFailed                    ErrorCode = 2006
	CodeEncodingFailed                    ErrorCode = 2009
	CodeAnalyticsDisabled                 ErrorCode = 3000
	CodeWrongParam                        ErrorCode = 3001
	CodeActivateOnceError                 ErrorCode = 3005
	CodeProfileWasChanged                 ErrorCode = 3006
	CodeUnsupportedData                   ErrorCode = 3007
	CodePersistingDataError               ErrorCode = 3100
	CodeFetchTimeoutError                 ErrorCode = 3101
	CodeOperationInterrupted              ErrorCode = 9000
)

var codeToName = map[ErrorCode]string{
	CodeUnknown:                             "unknown",
	CodeClientInvalid:                       "clientInvalid",
	CodePaymentInvalid:                      "paymentInvalid",
	CodePaymentNotAllowed:                   "paymentNotAllowed",
	CodeStoreProductNotAvailable:            "storeProductNotAvailable",
	CodeCloudServicePermissionDenied:        "cloudServicePermissionDenied",
	CodeCloudServiceNetworkConnectionFailed: "cloudServiceNetworkConnectionFailed",
	CodeCloudServiceRevoked:                 "cloudServiceRevoked",
	CodePrivacyAcknowledgementRequired:      "privacyAcknowledgementRequired",
	CodeUnauthorizedRequestData:             "unauthorizedRequestData",
	CodeInvalidOfferIdentifier:              "invalidOfferIdentifier",
	CodeInvalidSignature:                    "invalidSignature",
	CodeMissingOfferParams:                  "missingOfferParams",
	CodeInvalidOfferPrice:                   "invalidOfferPrice",

	CodeAdaptyNotInitialized:                         "adaptyNotInitialized",
	CodeProductNotFound:                              "productNotFound",
	CodeCurrentSubscriptionToUpdateNotFoundInHistory: "currentSubscriptionToUpdateNotFoundInHistory",
	CodeBillingServiceTimeout:                        "billingServiceTimeout",
	CodeFeatureNotSupported:                          "featureNotSupported",
	CodeBillingServiceDisconnected:                   "billingServiceDisconnected",
	CodeBillingServiceUnavailable:                    "billingServiceUnavailable",
	CodeBillingUnavailable:                           "billingUnavailable",
	CodeDeveloperError:                               "developerError",
	CodeBillingError:                                 "billingError",
	CodeItemAlreadyOwned:                             "itemAlreadyOwned",
	CodeItemNotOwned:                                 "itemNotOwned",
	CodeBillingNetworkError:                          "billingNetworkError",

	CodeNoProductIDsFound:                 "noProductIDsFound",
	CodeProductRequestFailed:              "productRequestFailed",
	CodeCantMakePayments:                  "cantMakePayments",
	CodeNoPurchasesToRestore:              "noPurchasesToRestore",
	CodeCantReadReceipt:                   "cantReadReceipt",
	CodeProductPurchaseFailed:             "productPurchaseFailed",
	CodeRefreshReceiptFailed:              "refreshReceiptFailed",
	CodeReceiveRestoredTransactionsFailed: "receiveRestoredTransactionsFailed",
	CodeNotActivated:                      "notActivated",
	CodeBadRequest:                        "badRequest",
	CodeServerError:                       "serverError",
	CodeNetworkFailed:                     "networkFailed",
	CodeDecodingFailed:                    "decodingFailed",
	CodeEncodingFailed:                    "encodingFailed",
	CodeAnalyticsDisabled:                 "analyticsDisabled",
	CodeWrongParam:                        "wrongParam",
	CodeActivateOnceError:                 "activateOnceError",
	CodeProfileWasChanged:                 "profileWasChanged",
	CodeUnsupportedData:                   "unsupportedData",
	CodePersistingDataError:               "persistingDataError",
	CodeFetchTimeoutError:                 "fetchTimeoutError",
	CodeOperationInterrupted:              "operationInterrupted",
}

// String returns the machine-stable name of the code, or "unknown
// code N" for codes outside the catalog.
func (c ErrorCode) String() string {
	if name, ok := codeToName[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown code %d", int(c))
}

// Known reports whether c is in the error code catalog.
func (c ErrorCode) Known() bool {
	_, ok := codeToName[c]
	return ok
}

// Codes returns all cataloged error codes in ascending order.
func Codes() []ErrorCode {
	return slices.Sorted(maps.Keys(codeToName))
}

// Error is the error type surfaced to callers for every failure: bad
// wire data, unencodable values, and errors reported by the
// counterpart process.
type Error struct {
	// Code is the numeric error code.
	Code ErrorCode
	// Message is a human-readable description of the failure.
	Message string
	// Detail is optional extra diagnostic text, such as an opaque
	// error payload that could not be classified.
	Detail string
	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("#%d (%s): %s", int(e.Code), e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Name returns the machine-stable identifier of the error's code.
func (e *Error) Name() string {
	return e.Code.String()
}

// CodeOf returns the error code of err, if it is or wraps an
// [*Error]. Otherwise, it returns CodeUnknown.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// WrapError returns err as an [*Error] with the given code. If err
// already is or wraps an *Error, that *Error is returned unchanged.
func WrapError(code ErrorCode, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{
		Code:    code,
		Message: err.Error(),
		Err:     err,
	}
}

// codeErr is [WrapError] for internal callers that return an error
// interface. It preserves nil, and returns err itself when it already
// carries an *Error.
func codeErr(code ErrorCode, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return WrapError(code, err)
}
