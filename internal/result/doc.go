// Package result defines the success and failure envelope returned by every
// component execution together with the fixed error-code taxonomy used for
// process exit statuses.
package result
