package registry

// defaultRegistry seeds .launchpad/registry.toml on first use. Edit
// commands/ports as needed for your local setup.
const defaultRegistry = `# Launchpad Hub app registry
# Edit commands/ports as needed for your local setup.

[[apps]]
name = "coevo-api"
repo_url = "https://github.com/MichaelWave369/CoEvo.git"
category = "coevo"
app_type = "fastapi"
stack_hint = "fastapi"
path = "CoEvo/server"
default_port = 8000
port_max = 8019
start_cmd = "uvicorn app.main:app --reload --host 127.0.0.1 --port {PORT}"
install_cmd = "python -m pip install -r requirements.txt"
test_cmd = "python -m pytest"
health_path = "/health"
python_entrypoint = "app.main:app"
capsule_mode = "http"
description = "CoEvo backend API"
enabled_by_default = true

[[apps]]
name = "coevo-web"
repo_url = "https://github.com/MichaelWave369/CoEvo.git"
category = "coevo"
app_type = "vite"
stack_hint = "vite"
path = "CoEvo/web"
default_port = 5173
port_max = 5199
start_cmd = "npm run dev -- --host 127.0.0.1 --port {PORT}"
install_cmd = "npm install"
build_cmd = "npm run build"
package_manager = "npm"
capsule_mode = "http"
description = "CoEvo frontend web app"
enabled_by_default = true

[[apps]]
name = "nevora-translator"
repo_url = "https://github.com/MichaelWave369/Nevora-Translator.git"
category = "nevora"
app_type = "python-cli"
stack_hint = "python-cli"
path = "Nevora-Translator"
default_port = 8040
port_max = 8059
start_cmd = "python -m translator.cli --help"
install_cmd = "python -m pip install -e ."
test_cmd = "python -m pytest"
python_entrypoint = "translator.cli"
capsule_mode = "static"
description = "Nevora translator CLI"
enabled_by_default = false

[[apps]]
name = "reconnect"
repo_url = "https://github.com/MichaelWave369/Reconnect.git"
category = "reconnect"
app_type = "python"
stack_hint = "fastapi"
path = "Reconnect"
default_port = 8010
port_max = 8029
start_cmd = "python main.py"
install_cmd = "python -m pip install -r requirements.txt"
health_path = "/health"
capsule_mode = "http"
description = "Reconnect local-first backend"
enabled_by_default = false

[[apps]]
name = "recom3ndo"
repo_url = "https://github.com/MichaelWave369/RecoM3ndo.git"
category = "recom3ndo"
app_type = "static"
stack_hint = "static"
path = "RecoM3ndo"
default_port = 8030
port_max = 8049
start_cmd = "python -m http.server {PORT} --bind 127.0.0.1"
capsule_mode = "static"
description = "RecoM3ndo static web app"
enabled_by_default = false

[[apps]]
name = "aidora"
repo_url = "https://github.com/MichaelWave369/Aidora.git"
category = "aidora"
app_type = "vite"
stack_hint = "vite"
path = "Aidora"
default_port = 5174
port_max = 5199
start_cmd = "pnpm dev -- --host 127.0.0.1 --port {PORT}"
install_cmd = "pnpm install"
build_cmd = "pnpm build"
package_manager = "pnpm"
capsule_mode = "http"
description = "Aidora React+TS app"
enabled_by_default = false

[[apps]]
name = "mindora"
repo_url = "https://github.com/MichaelWave369/Mindora.git"
category = "mindora"
app_type = "next"
stack_hint = "next"
path = "Mindora"
default_port = 3000
port_max = 3019
start_cmd = "pnpm dev -p {PORT}"
install_cmd = "pnpm install"
build_cmd = "pnpm build"
package_manager = "pnpm"
capsule_mode = "http"
description = "Mindora Next.js app"
enabled_by_default = false

[[apps]]
name = "gypsyai"
repo_url = "https://github.com/MichaelWave369/GypsyAI.git"
category = "gypsyai"
app_type = "next"
stack_hint = "next"
path = "GypsyAI"
default_port = 3001
port_max = 3029
start_cmd = "pnpm dev -p {PORT}"
install_cmd = "pnpm install"
build_cmd = "pnpm build"
package_manager = "pnpm"
capsule_mode = "http"
description = "GypsyAI Next.js app"
enabled_by_default = false

[[apps]]
name = "growora"
repo_url = "https://github.com/MichaelWave369/Growora.git"
category = "growora"
app_type = "wip"
stack_hint = "wip"
path = "Growora"
default_port = 8060
port_max = 8079
capsule_mode = "wip"
description = "Growora WIP placeholder"
enabled_by_default = false
`
