// Package cli implements the tbadmin terminal console for the token-metered
// prompt service backend.
//
// # Commands
//
// Session:
//
//	tbadmin login -email admin@example.com -password secret -remember
//	tbadmin whoami
//	tbadmin logout
//
// Account:
//
//	tbadmin register -email new@example.com -username new -password secret
//	tbadmin forgot-password -email admin@example.com
//	tbadmin change-password -current old -new new
//
// Resources (admin only, guarded):
//
//	tbadmin users list -limit 20 -search ada
//	tbadmin users get -id u1
//	tbadmin tokens balance -user u1
//	tbadmin tokens credit -user u1 -amount 100 -reason promo
//	tbadmin operations list
//	tbadmin templates list -active
//	tbadmin styles list
//	tbadmin hints list -type style
//
// # Configuration
//
// Backend URL and storage come from the TB_ADMIN_* environment variables; see
// the root package's FromEnv. A login with -remember persists the credential
// in the file store between invocations, surviving until logout or a 401 from
// the backend; without it the session ends with the process.
//
// Output is plain tabwriter tables on stdout; diagnostics go to a zap console
// logger on stderr.
package cli
