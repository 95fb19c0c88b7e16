// Command policyadmin is the command line client of the insurance policy administration API.
package main
