// Package metrics records generation metrics.
//
// Components receive a Recorder and default to NoopRecorder, so nothing needs a nil
// check:
//
//	gen := site.NewGenerator(cfg, renderer, assetsFS) // NoopRecorder
//	gen.SetRecorder(metrics.NewPrometheusRecorder(reg))
//
// The CLI creates a PrometheusRecorder only when a metrics textfile is configured and
// writes the registry to that file once the run finishes (see WriteTextfile), in the
// node_exporter textfile collector format.
package metrics
