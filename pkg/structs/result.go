package structs

import (
	"fmt"
)

// Result is a result code returned by an engine call.
type Result int32

const (
	ResultSuccess            Result = 0
	ResultFailure            Result = 1
	ResultAlreadyInitialized Result = 2
	ResultNotInitialized     Result = 3
	ResultCantLoadFile       Result = 4
	ResultParmSetFailed      Result = 5
	ResultInvalidArgument    Result = 6
	ResultCantLoadGeo        Result = 7
	ResultCantGeneratePreset Result = 8
	ResultCantLoadPreset     Result = 9
	ResultAssetDefAlready    Result = 10

	// licensing
	ResultNoLicenseFound             Result = 110
	ResultDisallowedNCLicenseFound   Result = 120
	ResultDisallowedNCAssetWithCLic  Result = 130
	ResultDisallowedNCAssetWithLCLic Result = 140
	ResultDisallowedLCAssetWithCLic  Result = 150
	ResultDisallowed3PartyPlugin     Result = 160

	ResultAssetInvalid    Result = 200
	ResultNodeInvalid     Result = 210
	ResultUserInterrupted Result = 300
	ResultInvalidSession  Result = 400
)

var resultNames = map[Result]string{
	ResultSuccess:                    "success",
	ResultFailure:                    "failure",
	ResultAlreadyInitialized:         "already initialized",
	ResultNotInitialized:             "not initialized",
	ResultCantLoadFile:               "cannot load file",
	ResultParmSetFailed:              "parameter set failed",
	ResultInvalidArgument:            "invalid argument",
	ResultCantLoadGeo:                "cannot load geometry",
	ResultCantGeneratePreset:         "cannot generate preset",
	ResultCantLoadPreset:             "cannot load preset",
	ResultAssetDefAlready:            "asset definition already loaded",
	ResultNoLicenseFound:             "no license found",
	ResultDisallowedNCLicenseFound:   "non-commercial license disallowed",
	ResultDisallowedNCAssetWithCLic:  "non-commercial asset used with commercial license",
	ResultDisallowedNCAssetWithLCLic: "non-commercial asset used with limited commercial license",
	ResultDisallowedLCAssetWithCLic:  "limited commercial asset used with commercial license",
	ResultDisallowed3PartyPlugin:     "third party plugin disallowed by license",
	ResultAssetInvalid:               "asset invalid",
	ResultNodeInvalid:                "node invalid",
	ResultUserInterrupted:            "user interrupted",
	ResultInvalidSession:             "invalid session",
}

func (r Result) String() string {
	n, ok := resultNames[r]
	if !ok {
		return fmt.Sprintf("result(%d)", int32(r))
	}
	return n
}

// IsLicenseResult returns if the result code indicates a missing or restricted license.
func IsLicenseResult(r Result) bool {
	switch r {
	case ResultNoLicenseFound,
		ResultDisallowedNCLicenseFound,
		ResultDisallowedNCAssetWithCLic,
		ResultDisallowedNCAssetWithLCLic,
		ResultDisallowedLCAssetWithCLic,
		ResultDisallowed3PartyPlugin:
		return true
	default:
		return false
	}
}

// IsNoLicenseResult returns if the result means there is no usable license at all,
// as opposed to a license that forbids a particular asset.
func IsNoLicenseResult(r Result) bool {
	return r == ResultNoLicenseFound || r == ResultDisallowedNCLicenseFound
}

// CookState is the state reported by the engine while a node is cooking or loading.
type CookState int32

const (
	CookReady                CookState = 0
	CookReadyWithFatalErrors CookState = 1
	CookReadyWithCookErrors  CookState = 2
	CookStartingCook         CookState = 3
	CookCooking              CookState = 4
	CookStartingLoad         CookState = 5
	CookLoading              CookState = 6
)

var cookStateNames = map[CookState]string{
	CookReady:                "Ready",
	CookReadyWithFatalErrors: "Ready with fatal errors",
	CookReadyWithCookErrors:  "Ready with cook errors",
	CookStartingCook:         "Starting cook",
	CookCooking:              "Cooking",
	CookStartingLoad:         "Starting load",
	CookLoading:              "Loading",
}

func (c CookState) String() string {
	n, ok := cookStateNames[c]
	if !ok {
		return fmt.Sprintf("cookstate(%d)", int32(c))
	}
	return n
}

// IsCookFinished returns if the engine is done with the node (successfully or not).
func IsCookFinished(c CookState) bool {
	return c <= CookReadyWithCookErrors
}
