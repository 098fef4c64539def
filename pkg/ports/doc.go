/*
Package ports defines the driven ports (interfaces) for the AromaTone backend.

These interfaces decouple the wizard engine and HTTP layer from concrete
implementations, allowing sessions to live in memory, on disk or in Redis.

# Key Interfaces

  - SessionStore: Responsible for persisting and loading wizard sessions.
  - DistributedLocker: Provides distributed locking for handling concurrent session access.
  - WizardEngine: The stateless sequencer driven by adapters.
*/
package ports
