package assets

// ServiceName is used as identifier in log and trace output.
const ServiceName = "festibal-push-backend"
