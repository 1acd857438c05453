// Package githubauth resolves the GitHub access token from the environment or a dotenv file.
package githubauth
