// Package scraper fetches raw HTML pages from volleyballworld.com.
//
// Two fetchers are provided. HTTPFetcher issues a plain GET through a resty client and is
// used by default. BrowserFetcher renders the page in a headless Chromium instance driven
// by rod, for pages whose tables are only present after JavaScript runs. Neither retries:
// a failed request is returned to the caller as an error.
package scraper
