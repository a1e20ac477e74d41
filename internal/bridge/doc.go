// Package bridge is the narrow command channel between the UI process and
// the privileged process.
//
// The whole surface is the set of tools registered in the service registry,
// addressed by channel names of the form "fs:readDirectory". A channel maps
// to the tool "fs.readDirectory" and its positional string arguments map, in
// order, onto the tool's declared parameters. Anything not registered is
// rejected before a provider sees it.
//
// Server side:
//   - Dispatcher: validates a request, dispatches it through the registry and
//     wraps the outcome in a types.BridgeResponse
//
// Client side:
//   - Invoker: moves one request to a dispatcher and back. HTTPInvoker
//     (resty), WSInvoker (gorilla/websocket, multiplexed by request ID) and
//     LocalInvoker (in-process) are provided.
//   - Client: the typed API the navigation engine consumes
//
// Failures of read operations come back as *types.OpError so the caller can
// show them verbatim. Failures of mutating operations are data
// (types.OperationResult). Everything else returned by an Invoker is a
// transport or rejection error. Nothing is retried.
package bridge
