// Package cookie provides a cookie jar that keeps API session cookies between process runs.
package cookie
