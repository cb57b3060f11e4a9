// Package chatstreams is a client library for QQ-style chat gateways that
// speak a discriminated-JSON websocket protocol.
//
// # Layout
//
// The module is organized around the data model, with the transport kept
// thin on top of it:
//
//   - chat: identity types shared by everything else (user, group, and
//     message ids, members, friends, permissions)
//   - message: the message chain model, its segment kinds, the escaping
//     grammar, and typed shape matching
//   - event: typed decoding of the gateway's pushed events
//   - gateway: the websocket session, command correlation, and
//     reconnection
//   - config: YAML configuration with environment overrides
//   - errors: error classification shared across packages
//
// # Wire model
//
// Both messages and events are tagged unions on the wire: JSON objects
// whose "type" field selects the variant. Each package keeps a closed
// registry from discriminator to decoder, so unknown tags fail with a
// typed error instead of producing a half-decoded value:
//
//	seg, err := message.ParseSegment(data)   // one segment object
//	ev, err := event.Parse(data)             // one event object
//
// A received message chain additionally carries Source and Quote
// pseudo-segments ahead of its content; message.ParseReceived splits
// those out.
//
// # Typical use
//
//	cfg, err := config.Load("config.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	client, err := gateway.NewClient(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := client.Connect(ctx); err != nil {
//		log.Fatal(err)
//	}
//	for ev := range client.Events() {
//		switch e := ev.(type) {
//		case event.GroupMessage:
//			if e.Message.Content.HasPrefix("!echo") {
//				reply := message.FromText(e.Message.Content.ExtractText())
//				client.SendGroupMessage(ctx, e.Sender.Group.ID, reply)
//			}
//		}
//	}
package chatstreams
