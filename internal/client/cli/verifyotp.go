package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/secureapp/secureapp-cli/internal/client/otp"
)

// verifyOtpView drives the one-time-code entry. Reaching it without a
// carried email bounces straight back to registration.
//
// The segmented widget is driven line-based: a single character types into
// the focused slot, a longer line is treated as a paste, "b" is backspace,
// an empty line submits (only when all six slots are filled), "r" requests a
// resend (stub), "q" cancels back to login.
func (a *App) verifyOtpView(ctx context.Context, nav NavContext) (Route, NavContext) {
	if nav.Email != "" && a.machine.PendingIdentity() == "" {
		// Direct entry (one-shot verify command): seed the machine.
		a.machine.LoginRequiresVerification(nav.Email)
	}

	if err := a.machine.EnterVerification(); err != nil {
		a.notifier.Notify(KindError, "Error", "Email is missing. Please register again.")
		return RouteRegister, NavContext{}
	}
	identity := a.machine.PendingIdentity()

	fmt.Fprintln(a.out, "-- Verify your email --")
	fmt.Fprintf(a.out, "We've sent a 6-digit code to %s. Enter it below.\n", identity)

	in := otp.New()
	for {
		renderSlots(a, in)

		line, err := getSimpleText(a.reader, "digits=type, Enter=submit, b=backspace, r=resend, q=cancel", a.out)
		if err != nil {
			return RouteExit, NavContext{}
		}

		switch line {
		case "":
			if !in.Complete() {
				a.notifier.Notify(KindError, "Invalid Code", "Please enter a valid 6-digit OTP.")
				continue
			}
			a.machine.BeginVerify()
			if err := a.auth.VerifyOtp(ctx, identity, in.Code()); err != nil {
				a.machine.VerificationFailed()
				a.notifyFailure("Verification failed", "Invalid or expired OTP code.", err)
				// Slots are kept; the user edits and resubmits.
				continue
			}
			a.machine.VerificationSucceeded()
			a.notifier.Notify(KindSuccess, "Verification successful", "Your email has been verified. You can now log in.")
			return RouteLogin, NavContext{}

		case "b":
			in.Backspace(in.Focus())

		case "r":
			a.notifier.Notify(KindInfo, "Resend requested", "This feature is coming soon!")

		case "q":
			return RouteLogin, NavContext{}

		default:
			if len([]rune(line)) == 1 {
				in.Type(in.Focus(), line)
			} else {
				in.Paste(line)
			}
		}
	}
}

func renderSlots(a *App, in *otp.Input) {
	var b strings.Builder
	b.WriteString("Code: ")
	for i := 0; i < otp.Length; i++ {
		v := in.Slot(i)
		if v == "" {
			v = "_"
		}
		if i == in.Focus() {
			b.WriteString("(" + v + ") ")
		} else {
			b.WriteString("[" + v + "] ")
		}
	}
	fmt.Fprintln(a.out, b.String())
}
