package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/slp/internal/encryptor"
	kerrors "github.com/PolarWolf314/slp/internal/errors"
	"github.com/PolarWolf314/slp/internal/site"
)

// VerifyFailure is a page whose artifact did not verify.
type VerifyFailure struct {
	Page site.Page
	Err  error
}

// VerifyResult contains the outcome of a verify operation.
type VerifyResult struct {
	// Verified lists pages whose artifact decrypts to the source page.
	Verified []site.Page

	// Failures lists pages that did not verify, with the reason.
	Failures []VerifyFailure
}

// Verify decrypts every page's artifact with the password from the secrets
// file and checks it matches the protected source page. Every page is
// checked; failures are collected in the result rather than returned.
//
// Returns ErrNoPagesFound if the site has no protected pages.
func Verify(ctx context.Context, opts Options) (*VerifyResult, error) {
	env, err := loadEnvironment(opts)
	if err != nil {
		return nil, err
	}

	pages, err := site.Discover(env.root, env.settings, env.log)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, kerrors.ErrNoPagesFound
	}

	store, err := loadStore(env)
	if err != nil {
		return nil, err
	}

	result := &VerifyResult{}
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		password, ok := store.Get(page.Title)
		if !ok {
			result.Failures = append(result.Failures, VerifyFailure{
				Page: page,
				Err:  fmt.Errorf("%w: no secret for title %s", kerrors.ErrValidation, page.Title),
			})
			continue
		}

		env.log.Debugf("Verifying %s", page.Output)
		if err := encryptor.Verify(page.Output, page.Source, password, env.settings.KDFIterations); err != nil {
			result.Failures = append(result.Failures, VerifyFailure{Page: page, Err: err})
			continue
		}
		result.Verified = append(result.Verified, page)
	}
	return result, nil
}
