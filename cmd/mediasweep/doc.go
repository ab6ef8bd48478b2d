// Command mediasweep reconciles a media server's library catalog against the
// filesystem: it reports catalog entries whose backing file is gone and,
// after confirmation, removes them from the catalog.
package main
